package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"cora/internal/model"
)

type CreateExpense struct {
	UserID      int64     `json:"user_id"`
	JobID       *int64    `json:"job_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	SpentAt     time.Time `json:"spent_at"`
}

type ExpensesController struct {
	database *gorm.DB
	router   *gin.RouterGroup
}

func NewExpensesController(router *gin.RouterGroup, database *gorm.DB) *ExpensesController {
	return &ExpensesController{
		database: database,
		router:   router,
	}
}

func (ec *ExpensesController) SetupRoutes() {
	expensesGroup := ec.router.Group("/expenses")
	expensesGroup.GET("", ec.listExpenses)
	expensesGroup.POST("", ec.createExpense)
	expensesGroup.DELETE("/:id", ec.deleteExpense)
}

func (ec *ExpensesController) listExpenses(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)

	if err != nil || userID <= 0 {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid user_id",
		})
		return
	}

	ctx := c.Request.Context()
	expenses, err := gorm.G[model.Expense](ec.database).Where("user_id = ?", userID).Order("spent_at desc").Find(ctx)

	if err != nil {
		log.Error().Err(err).Msg("failed to fetch expenses")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Database error",
		})
		return
	}

	c.JSON(200, map[string]any{
		"status":   200,
		"total":    len(expenses),
		"expenses": expenses,
	})
}

func (ec *ExpensesController) createExpense(c *gin.Context) {
	var expense CreateExpense

	if err := c.BindJSON(&expense); err != nil {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid request body",
		})
		return
	}

	if expense.UserID <= 0 || expense.Amount <= 0 {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "user_id and a positive amount are required",
		})
		return
	}

	if expense.SpentAt.IsZero() {
		expense.SpentAt = time.Now()
	}

	ctx := c.Request.Context()
	record := model.Expense{
		UserID:      expense.UserID,
		JobID:       expense.JobID,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description,
		SpentAt:     expense.SpentAt,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := gorm.G[model.Expense](ec.database).Create(ctx, &record); err != nil {
		log.Error().Err(err).Msg("failed to create expense")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Database error",
		})
		return
	}

	c.JSON(201, map[string]any{
		"status":  201,
		"message": "Expense created",
		"expense": record,
	})
}

func (ec *ExpensesController) deleteExpense(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil || id <= 0 {
		c.JSON(400, gin.H{
			"status":  400,
			"message": "Invalid expense id",
		})
		return
	}

	ctx := c.Request.Context()
	rowsAffected, err := gorm.G[model.Expense](ec.database).Where("id = ?", id).Delete(ctx)

	if err != nil {
		log.Error().Err(err).Msg("failed to delete expense")
		c.JSON(500, gin.H{
			"status":  500,
			"message": "Database error",
		})
		return
	}

	if rowsAffected == 0 {
		c.JSON(404, gin.H{
			"status":  404,
			"message": "Expense not found",
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  200,
		"message": "Expense deleted",
	})
}
