package cmd

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setupLogger returns a development logger writing to w when debug is set and
// a no-op logger otherwise, so that command output stays clean.
func setupLogger(debug bool, w io.Writer) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}
	encCfg.TimeKey = "ts"
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core).Sugar()
}
