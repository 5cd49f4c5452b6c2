package canbus

import (
	"context"
	"fmt"
	"net"

	"go.einride.tech/can/pkg/socketcan"
	"go.uber.org/zap"
)

// Transport publishes actuation requests on a SocketCAN interface. It
// connects once; there is no reconnect logic.
type Transport struct {
	conn net.Conn
	tx   *socketcan.Transmitter
	id   uint32
	log  *zap.Logger
}

// Dial attaches to the given CAN interface, e.g. "can0" or "vcan0".
func Dial(ctx context.Context, iface string, id uint32, log *zap.Logger) (*Transport, error) {
	conn, err := socketcan.DialContext(ctx, "can", iface)
	if err != nil {
		return nil, fmt.Errorf("socketcan dial %s: %w", iface, err)
	}
	return &Transport{
		conn: conn,
		tx:   socketcan.NewTransmitter(conn),
		id:   id,
		log:  log,
	}, nil
}

// IsRunning reports whether the transport is attached to the bus.
func (t *Transport) IsRunning() bool {
	return t.conn != nil
}

// Send transmits one actuation request.
func (t *Transport) Send(ctx context.Context, ar ActuationRequest) error {
	frame := Marshal(t.id, ar)
	t.log.Debug("sending actuation request",
		zap.Float32("acceleration", ar.Acceleration),
		zap.Float32("steering", ar.Steering),
		zap.Bool("valid", ar.Valid),
	)
	return t.tx.TransmitFrame(ctx, frame)
}

func (t *Transport) Close() error {
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}
