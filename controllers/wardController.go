package controllers

import (
	"WardShift/handlers"

	"github.com/gin-gonic/gin"
)

// SetupWardRoutes registers the shift, patient, task, bed, activity and
// report routes on the authenticated route group.
func SetupWardRoutes(router *gin.RouterGroup, shiftHandler *handlers.ShiftHandler, patientHandler *handlers.PatientHandler, taskHandler *handlers.TaskHandler, bedHandler *handlers.BedHandler, activityHandler *handlers.ActivityHandler, reportHandler *handlers.ReportHandler, referenceHandler *handlers.ReferenceHandler) {
	router.POST("/shifts", shiftHandler.StartShift)
	router.GET("/shifts/current", shiftHandler.GetCurrentShift)
	router.POST("/shifts/:shift_id/join", shiftHandler.JoinShift)
	router.POST("/shifts/:shift_id/leave", shiftHandler.LeaveShift)
	router.DELETE("/shifts/:shift_id", shiftHandler.EndShift)

	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	router.GET("/patients", patientHandler.GetAllPatients)
	router.POST("/patients/:patient_id/discharge", patientHandler.DischargePatient)
	router.POST("/patients/:patient_id/death", patientHandler.RecordDeath)
	router.GET("/discharged-patients", patientHandler.GetDischargedPatients)
	router.GET("/deceased-patients", patientHandler.GetDeceasedPatients)

	router.POST("/tasks", taskHandler.CreateTask)
	router.GET("/tasks/:task_id", taskHandler.GetTaskByID)
	router.PUT("/tasks/:task_id", taskHandler.UpdateTask)
	router.DELETE("/tasks/:task_id", taskHandler.DeleteTask)
	router.GET("/tasks", taskHandler.GetAllTasks)

	router.GET("/beds", bedHandler.GetBedStatuses)
	router.PUT("/beds/:department", bedHandler.UpdateBedStatus)

	router.GET("/activity-logs", activityHandler.GetActivityLogs)

	router.GET("/reports/shift", reportHandler.GenerateShiftReport)

	router.GET("/departments", referenceHandler.GetDepartments)
	router.GET("/countries", referenceHandler.GetCountries)
}
