package main

import "github.com/jinwoo-p/sociogram/pkg/logger"

func main() {
	defer logger.Sync()
	NewServer().Run()
}
