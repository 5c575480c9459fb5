package main

import (
	"github.com/opsmux/bamboo-watcher/pkg/client"
)

func main() {
	client.Run()
}
