package main

import (
	"github.com/gacevedo/virus-sucks-plotter/config"
	"github.com/gacevedo/virus-sucks-plotter/docslot"
)

type Global struct {
	log    logger
	slot   *docslot.Slot
	config config.JSONConfig

	Site string
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
