package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/mrsobakin/armada/internal/config"
	"github.com/mrsobakin/armada/internal/session"
)

func NewServer(conf config.Config) *server {
	return &server{
		sessions: session.NewManager(conf.MaxSessions),
	}
}

func main() {
	conf, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}

	if conf.Stage == config.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	s := NewServer(conf)

	s.RegisterEndpoints(router)

	addr := conf.Addr
	if len(os.Args) >= 2 {
		addr = os.Args[1]
	}

	log.Printf("stage %s, at most %d sessions, listening on %s\n", conf.Stage, conf.MaxSessions, addr)
	log.Println(router.Run(addr))
}
