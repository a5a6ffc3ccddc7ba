// Cmsgwalk walks hex-encoded socket control buffers and prints the
// ancillary-data records they contain.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/database64128/linux-abi-go/cmsg"
	"github.com/database64128/linux-abi-go/jsoncfg"
	"github.com/database64128/linux-abi-go/tslog"
)

var (
	testConf   bool
	confPath   string
	logNoColor bool
	logNoTime  bool
	logLevel   slog.Level
)

func init() {
	flag.BoolVar(&testConf, "testConf", false, "Test the configuration file and exit without walking any buffers")
	flag.StringVar(&confPath, "confPath", "", "Path to JSON configuration file")
	flag.BoolVar(&logNoColor, "logNoColor", false, "Disable colors in log output")
	flag.BoolVar(&logNoTime, "logNoTime", false, "Disable timestamps in log output")
	flag.TextVar(&logLevel, "logLevel", slog.LevelInfo, "Log level: debug, info, warn, error")
}

// Config lists the control buffers to walk.
type Config struct {
	Buffers []BufferConfig `json:"buffers"`
}

// BufferConfig is a single named control buffer.
type BufferConfig struct {
	// Name identifies the buffer in log output.
	Name string `json:"name"`

	// Hex is the hex-encoded contents of the control buffer.
	Hex string `json:"hex"`
}

func main() {
	flag.Parse()

	if confPath == "" {
		fmt.Println("Missing -confPath <path>.")
		flag.Usage()
		os.Exit(1)
	}

	logCfg := tslog.Config{
		Level:   logLevel,
		NoColor: logNoColor,
		NoTime:  logNoTime,
	}
	logger := logCfg.NewLogger(os.Stderr)

	var cfg Config
	if err := jsoncfg.Open(confPath, &cfg); err != nil {
		logger.Error("Failed to load config",
			slog.String("confPath", confPath),
			tslog.Err(err),
		)
		os.Exit(1)
	}

	if testConf {
		logger.Info("Config test OK", slog.String("confPath", confPath))
		return
	}

	for _, bc := range cfg.Buffers {
		b, err := hex.DecodeString(bc.Hex)
		if err != nil {
			logger.Error("Failed to decode control buffer",
				slog.String("name", bc.Name),
				tslog.Err(err),
			)
			os.Exit(1)
		}

		recs, err := cmsg.Parse(b)
		for i, rec := range recs {
			logger.Info("Control message",
				slog.String("name", bc.Name),
				slog.Int("index", i),
				tslog.Int("level", rec.Level),
				tslog.Int("type", rec.Type),
				slog.Int("dataLen", len(rec.Data)),
				slog.String("data", hex.EncodeToString(rec.Data)),
			)
		}
		if err != nil {
			logger.Error("Malformed control message chain",
				slog.String("name", bc.Name),
				tslog.Int("parsed", len(recs)),
				tslog.Err(err),
			)
			os.Exit(1)
		}

		logger.Debug("Finished walking control buffer",
			slog.String("name", bc.Name),
			slog.Int("size", len(b)),
			tslog.Int("records", len(recs)),
		)
	}
}
