package constants

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr     = ":8080"
	DefaultPNGScale = 4.0
)

// LoadEnv reads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetAddr() string {
	addr := os.Getenv("CHORDQUIZ_ADDR")
	if addr != "" {
		return addr
	}
	return DefaultAddr
}

// GetFontPath is the SMuFL font used for PNG output. Empty means none.
func GetFontPath() string {
	return os.Getenv("CHORDQUIZ_FONT_PATH")
}

func GetPNGScale() float64 {
	scale, err := strconv.ParseFloat(os.Getenv("CHORDQUIZ_PNG_SCALE"), 64)
	if err != nil || scale <= 0 {
		return DefaultPNGScale
	}
	return scale
}

func GetAllowDouble() bool {
	allow, err := strconv.ParseBool(os.Getenv("CHORDQUIZ_ALLOW_DOUBLE"))
	return err == nil && allow
}
