package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Patch  bool
	CBind  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("DNA_DEBUG_DECODE")
	d.Patch = boolEnv("DNA_DEBUG_PATCH")
	d.CBind = boolEnv("DNA_DEBUG_CBIND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Patch() bool {
	return d.Patch
}
func CBind() bool {
	return d.CBind
}
