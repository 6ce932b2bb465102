//go:build !amd64 && !arm64

package ggmath

func init() {
	initDispatch(func() DispatchLevel { return DispatchScalar })
}
