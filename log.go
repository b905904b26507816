package currency

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a JSON logger writing to stderr at level (debug, info,
// warn, error; info when unparsable), tagged with service.
func NewLogger(service, level string) *zap.Logger {
	return newLogger(zapcore.Lock(os.Stderr), service, level)
}

func newLogger(ws zapcore.WriteSyncer, service, level string) *zap.Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zap.InfoLevel
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.MessageKey = "msg"

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, lvl)
	return zap.New(core, zap.AddCaller()).With(zap.String("service", service))
}
