// Package transport provides a new server-entity(by ginext) exposing the search engine over HTTP
package transport

import (
	"log"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type Processor interface {
	ProcessInput(task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc Processor
}

func NewServer(addr string, proc Processor) *http.Server {
	h := handlers{proc: proc}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	ctx.Status(http.StatusOK)
}

func (h handlers) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	res := h.proc.ProcessInput(&task)
	log.Printf("Task %q: %d line(s) matched, hash %d", res.TaskID, len(res.Output), res.HashSumm)

	ctx.JSON(http.StatusOK, res)
}
