package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Env    bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("POD_DEBUG_PARSE")
	d.Env = boolEnv("POD_DEBUG_ENV")
	d.Encode = boolEnv("POD_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Env() bool {
	return d.Env
}
func Encode() bool {
	return d.Encode
}
