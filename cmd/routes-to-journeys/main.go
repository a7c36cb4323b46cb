package main

import (
	lib "github.com/theoremus-urban-solutions/routes-to-journeys"
	"github.com/theoremus-urban-solutions/routes-to-journeys/config"
)

func main() {
	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	Execute()
}
