package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitzone_backend/internals/constants"
	bookingService "fitzone_backend/internals/features/bookings/bookings/service"
	"fitzone_backend/internals/features/classes/classes/dto"
	"fitzone_backend/internals/features/classes/classes/model"
	"fitzone_backend/internals/features/classes/classes/service"
	helper "fitzone_backend/internals/helpers"
)

type ClassSessionController struct {
	DB *gorm.DB
}

func NewClassSessionController(db *gorm.DB) *ClassSessionController {
	return &ClassSessionController{DB: db}
}

// =======================
// GET /api/u/classes
// =======================
// Every class row is returned with live availability, recomputed from the
// booking ledger on each request.
func (ctrl *ClassSessionController) ListClasses(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClassSessionModel{})
	q = helper.ScopeByRegion(q, p.Role, p.Region, "class_session_region", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var classes []model.ClassSessionModel
	if err := q.Order("class_session_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	resp := make([]dto.ClassSessionResponse, 0, len(classes))
	for i := range classes {
		item := ToClassResponseWithAvailability(ctrl.DB, &classes[i])
		resp = append(resp, *item)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Classes fetched successfully", resp, pagination)
}

// =======================
// GET /api/u/classes/:id
// =======================
func (ctrl *ClassSessionController) GetClassByID(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class model.ClassSessionModel
	if err := ctrl.DB.Where("class_session_id = ?", classID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if !helper.RegionVisible(p.Role, p.Region, class.ClassSessionRegion) {
		return helper.JsonError(c, fiber.StatusForbidden, "Class is not available in your region")
	}

	return helper.JsonOK(c, "Class fetched successfully", ToClassResponseWithAvailability(ctrl.DB, &class))
}

// =======================
// POST /api/a/classes
// =======================
func (ctrl *ClassSessionController) CreateClass(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	region, err := service.ResolveCreateRegion(p.Role, p.Region, req.ClassSessionRegion)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	class := req.ToModel(p.ID)
	class.ClassSessionRegion = region

	if err := ctrl.DB.Create(class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.JsonCreated(c, "Class created successfully", dto.ToClassSessionResponse(class))
}

// =======================
// PATCH /api/a/classes/:id
// =======================
// Managers may only touch classes they can see; region reassignment is
// admin-only.
func (ctrl *ClassSessionController) UpdateClass(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class model.ClassSessionModel
	if err := ctrl.DB.Where("class_session_id = ?", classID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if !helper.RegionVisible(p.Role, p.Region, class.ClassSessionRegion) {
		return helper.JsonError(c, fiber.StatusForbidden, "Class belongs to another region")
	}

	var req dto.ClassSessionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.ClassSessionName != nil {
		updates["class_session_name"] = strings.TrimSpace(*req.ClassSessionName)
	}
	if req.ClassSessionInstructor != nil {
		updates["class_session_instructor"] = strings.TrimSpace(*req.ClassSessionInstructor)
	}
	if req.ClassSessionDate != nil {
		updates["class_session_date"] = strings.TrimSpace(*req.ClassSessionDate)
	}
	if req.ClassSessionTime != nil {
		updates["class_session_time"] = strings.TrimSpace(*req.ClassSessionTime)
	}
	if req.ClassSessionCapacity != nil {
		if *req.ClassSessionCapacity <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Capacity must be greater than zero")
		}
		updates["class_session_capacity"] = *req.ClassSessionCapacity
	}
	if req.ClassSessionRegion != nil {
		if p.Role != constants.RoleAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Only admin can move a class between regions")
		}
		updates["class_session_region"] = strings.TrimSpace(*req.ClassSessionRegion)
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&class).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.JsonUpdated(c, "Class updated successfully", dto.ToClassSessionResponse(&class))
}

// =======================
// DELETE /api/a/classes/:id
// =======================
func (ctrl *ClassSessionController) DeleteClass(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class model.ClassSessionModel
	if err := ctrl.DB.Where("class_session_id = ?", classID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if !helper.RegionVisible(p.Role, p.Region, class.ClassSessionRegion) {
		return helper.JsonError(c, fiber.StatusForbidden, "Class belongs to another region")
	}

	if err := service.EnsureCanDelete(ctrl.DB, classID.String()); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}

	return helper.JsonDeleted(c, "Class deleted successfully", fiber.Map{"class_session_id": classID})
}

// ToClassResponseWithAvailability enriches a class row with its computed
// availability. Failures to count fall back to the bare row rather than
// failing the whole listing.
func ToClassResponseWithAvailability(db *gorm.DB, class *model.ClassSessionModel) *dto.ClassSessionResponse {
	resp := dto.ToClassSessionResponse(class)
	availability, err := bookingService.ComputeAvailability(db, class)
	if err == nil {
		resp.ApprovedCount = &availability.ApprovedCount
		resp.Availability = &availability.Tier
	}
	return resp
}
