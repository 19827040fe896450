package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"cora/internal/model"
)

type CreateJob struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type JobsController struct {
	database *gorm.DB
	router   *gin.RouterGroup
}

func NewJobsController(router *gin.RouterGroup, database *gorm.DB) *JobsController {
	return &JobsController{
		database: database,
		router:   router,
	}
}

func (jc *JobsController) SetupRoutes() {
	jobsGroup := jc.router.Group("/jobs")
	jobsGroup.GET("", jc.listJobs)
	jobsGroup.POST("", jc.createJob)
}

func (jc *JobsController) listJobs(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)

	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid user_id",
		})
		return
	}

	ctx := c.Request.Context()
	jobs, err := gorm.G[model.Job](jc.database).Where("user_id = ?", userID).Find(ctx)

	if err != nil {
		log.Error().Err(err).Msg("failed to fetch jobs")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Database error",
		})
		return
	}

	c.JSON(200, map[string]any{
		"status": 200,
		"total":  len(jobs),
		"jobs":   jobs,
	})
}

func (jc *JobsController) createJob(c *gin.Context) {
	var job CreateJob

	if err := c.BindJSON(&job); err != nil {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid request body",
		})
		return
	}

	if job.UserID <= 0 || job.Name == "" {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "user_id and name are required",
		})
		return
	}

	if job.Status == "" {
		job.Status = "active"
	}

	ctx := c.Request.Context()
	record := model.Job{
		UserID:    job.UserID,
		Name:      job.Name,
		Status:    job.Status,
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := gorm.G[model.Job](jc.database).Create(ctx, &record); err != nil {
		log.Error().Err(err).Msg("failed to create job")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Database error",
		})
		return
	}

	c.JSON(201, map[string]any{
		"status":  201,
		"message": "Job created",
		"job":     record,
	})
}
