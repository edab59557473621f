//go:build staticmap

package config

func init() { StaticMap = true }
