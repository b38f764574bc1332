package main

import (
	"github.com/sjzar/chatrecap/cmd/chatrecap"
)

func main() {
	chatrecap.Execute()
}
