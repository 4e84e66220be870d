package lorController

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"certifyme/database"
	"certifyme/middleware"
	"certifyme/models"
	"certifyme/utils"
	lorValidator "certifyme/validators/lor"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLOR creates a pending letter-of-recommendation request for the
// authenticated student. At most one pending request per student.
func RequestLOR(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	email, _ := c.Locals("email").(string)

	reqData, ok := c.Locals("validatedLORRequest").(*lorValidator.RequestLORRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("student_id = ? AND status = ?", userID, models.LORStatusPending).First(&models.LORRequest{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have a pending LOR request. Please wait for it to be processed.", nil)
	}

	request := models.LORRequest{
		StudentID:    userID,
		StudentEmail: email,
		Reason:       reqData.Reason,
		Status:       models.LORStatusPending,
		RequestDate:  time.Now(),
	}

	if err := db.Create(&request).Error; err != nil {
		log.Printf("Error saving LOR request for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit LOR request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "LOR request submitted successfully.", request)
}

// GetAllLORRequests lists every request for the admin dashboard, pending
// first, then newest.
func GetAllLORRequests(c *fiber.Ctx) error {
	var requests []models.LORRequest
	err := database.Database.Db.
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END").
		Order("request_date desc").
		Find(&requests).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch LOR requests!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "LOR requests fetched successfully.", requests)
}

// UpdateLORStatus approves or rejects a pending request. The status change
// and action timestamp are committed before the notification email goes out;
// a delivery failure is logged and does not undo the decision.
func UpdateLORStatus(c *fiber.Ctx) error {
	requestID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request id!", nil)
	}

	reqData, ok := c.Locals("validatedStatusUpdate").(*lorValidator.UpdateStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var request models.LORRequest
	if err := db.First(&request, requestID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "LOR request not found!", nil)
	}

	if request.Status != models.LORStatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			fmt.Sprintf("Request already %s. Cannot update.", request.Status), nil)
	}

	studentName := studentNameFor(&request)
	now := time.Now()
	request.Status = reqData.Status
	request.ActionDate = &now
	if reqData.AdminNotes != "" {
		request.AdminNotes = reqData.AdminNotes
	}

	if reqData.Status == models.LORStatusApproved {
		pdf, err := utils.RenderLORPDF(studentName, request.AdminNotes, now)
		if err != nil {
			log.Printf("Error rendering LOR PDF for request %d: %v", request.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate LOR!", nil)
		}

		filename := fmt.Sprintf("LOR_%s_%s.pdf", utils.SanitizeFilename(studentName), uuid.NewString())
		if err := utils.WriteFile(utils.LORPDFPath(filename), pdf); err != nil {
			log.Printf("Error storing LOR PDF for request %d: %v", request.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate LOR!", nil)
		}
		request.LORPDFPath = "/lors/" + filename

		if err := db.Save(&request).Error; err != nil {
			log.Printf("Error saving LOR request %d: %v", request.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update LOR request!", nil)
		}

		if err := utils.SendLORApprovedEmail(studentName, request.StudentEmail, reqData.AdminNotes, filename, pdf); err != nil {
			log.Printf("Error sending LOR approval email to %s: %v", request.StudentEmail, err)
		}
	} else {
		if err := db.Save(&request).Error; err != nil {
			log.Printf("Error saving LOR request %d: %v", request.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update LOR request!", nil)
		}

		if err := utils.SendLORRejectedEmail(studentName, request.StudentEmail, reqData.AdminNotes); err != nil {
			log.Printf("Error sending LOR rejection email to %s: %v", request.StudentEmail, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("LOR request %s successfully.", reqData.Status), request)
}

// IssueDirectLOR renders and emails a letter for an already-registered user
// without a prior request, recording it with status issued_directly.
func IssueDirectLOR(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIssueDirect").(*lorValidator.IssueDirectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.User
	if err := db.Where("email = ?", reqData.Email).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No registered user found with this email.", nil)
	}

	now := time.Now()
	pdf, err := utils.RenderLORPDF(student.Name, reqData.AdminNotes, now)
	if err != nil {
		log.Printf("Error rendering direct LOR PDF for %s: %v", student.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate LOR!", nil)
	}

	filename := fmt.Sprintf("LOR_Direct_%s_%s.pdf", utils.SanitizeFilename(student.Name), uuid.NewString())
	if err := utils.WriteFile(utils.LORPDFPath(filename), pdf); err != nil {
		log.Printf("Error storing direct LOR PDF for %s: %v", student.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate LOR!", nil)
	}

	record := models.LORRequest{
		StudentID:    student.ID,
		StudentEmail: student.Email,
		Status:       models.LORStatusIssuedDirectly,
		RequestDate:  now,
		ActionDate:   &now,
		AdminNotes:   strings.TrimSpace("Directly issued. " + reqData.AdminNotes),
		LORPDFPath:   "/lors/" + filename,
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("Error saving direct LOR record for %s: %v", student.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record issued LOR!", nil)
	}

	if err := utils.SendDirectLOREmail(student.Name, student.Email, reqData.AdminNotes, filename, pdf); err != nil {
		log.Printf("Error sending direct LOR email to %s: %v", student.Email, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("LOR issued directly and sent to %s.", student.Email), record)
}

// studentNameFor resolves the display name behind a request, falling back to
// a neutral label when the account was removed out of band.
func studentNameFor(request *models.LORRequest) string {
	var student models.User
	if err := database.Database.Db.First(&student, request.StudentID).Error; err != nil || student.Name == "" {
		return "Student"
	}
	return student.Name
}
