package handlers

import (
	"WardShift/models"
	"WardShift/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service *services.TaskService
	users   services.UserService
}

func NewTaskHandler(service *services.TaskService, users services.UserService) *TaskHandler {
	return &TaskHandler{service: service, users: users}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &task, actor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, task)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id := c.Param("task_id")
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil || task == nil {
		c.JSON(404, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(200, task)
}

func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, tasks)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("task_id")
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	task.ID = id
	if err := h.service.Update(c.Request.Context(), &task, actor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("task_id")
	if err := h.service.Delete(c.Request.Context(), id, actor); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Task deleted"})
}
