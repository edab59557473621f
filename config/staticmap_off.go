//go:build !staticmap

package config

func init() { StaticMap = false }
