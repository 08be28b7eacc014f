package main

import (
	"bytes"
	"io"
	"log"
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrsobakin/armada/internal/game/field"
	"github.com/mrsobakin/armada/internal/session"
)

type server struct {
	sessions *session.Manager
}

type position struct {
	Row    *int `json:"row" binding:"required"`
	Column *int `json:"column" binding:"required"`
}

func (p position) Position() field.Position {
	return field.NewPosition(*p.Row, *p.Column)
}

func (s *server) session(c *gin.Context) (*session.Session, bool) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return sess, true
}

func (s *server) handleCreate(c *gin.Context) {
	var params struct {
		Random bool    `json:"random"`
		Seed   *uint64 `json:"seed"`
	}

	if c.Request.ContentLength != 0 && !tryBindParams(c, &params) {
		return
	}

	seed := rand.Uint64()
	if params.Seed != nil {
		seed = *params.Seed
	}

	id, sess, err := s.sessions.Create(seed)
	if err != nil {
		respondError(c, err)
		return
	}

	if params.Random {
		if err := sess.Randomize(nil); err != nil {
			if err := s.sessions.Close(id); err != nil {
				log.Println("failed to drop session", id, err)
			}
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, map[string]any{
		"id": id,
	})
}

func (s *server) handlePlace(c *gin.Context) {
	var params struct {
		Category field.Category `json:"category" binding:"required"`
		Compass  string         `json:"compass" binding:"required"`
		position
	}

	sess, ok := s.session(c)
	if !ok || !tryBindParams(c, &params) {
		return
	}

	var compass field.Compass
	if err := compass.FromString(params.Compass); err != nil {
		c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   ErrBadFormat,
			"details": err.Error(),
		})
		return
	}

	placed, err := sess.Place(params.Category, compass, params.Position())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]any{
		"placed": placed,
	})
}

func (s *server) handleLayout(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	if err := sess.Load(field.ParseShips(c.Request.Body)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess.Stats())
}

func (s *server) handleStart(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	if err := sess.Start(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sess.Stats())
}

func (s *server) handleFire(c *gin.Context) {
	var params position

	sess, ok := s.session(c)
	if !ok || !tryBindParams(c, &params) {
		return
	}

	report, err := sess.Fire(params.Position())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *server) handleStats(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, sess.Stats())
}

func (s *server) handleRender(render func(*session.Session, io.Writer) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := s.session(c)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := render(sess, &buf); err != nil {
			respondError(c, err)
			return
		}

		c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
	}
}

func (s *server) handleClose(c *gin.Context) {
	if err := s.sessions.Close(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *server) RegisterEndpoints(e *gin.Engine) {
	e.POST("/sessions", s.handleCreate)

	g := e.Group("/sessions/:id")
	g.GET("", s.handleStats)
	g.DELETE("", s.handleClose)
	g.POST("/ships", s.handlePlace)
	g.PUT("/layout", s.handleLayout)
	g.POST("/start", s.handleStart)
	g.POST("/fire", s.handleFire)
	g.GET("/board", s.handleRender((*session.Session).Board))
	g.GET("/fleet", s.handleRender((*session.Session).Fleet))
	g.GET("/ws", s.handleWs)
}
