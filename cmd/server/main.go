package main

import "github.com/zainkazmi786/GlamourPro-sub001/internal/app/server"

func main() {
	server.Run()
}
