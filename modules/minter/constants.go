package minter

const (
	Version   = "v0.1.0"
	DBVersion = 1
)
