package controller

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseDto "coursehub_backend/internals/features/academics/courses/dto"
	"coursehub_backend/internals/features/academics/teachers/dto"
	"coursehub_backend/internals/features/academics/teachers/model"
	helper "coursehub_backend/internals/helpers"
	"coursehub_backend/internals/repository"
)

var validateTeacher = validator.New()

var teacherSchema = repository.Schema{
	Entity:   "Teacher",
	IDColumn: "id",
	UniqueFields: []repository.UniqueField{
		{Column: "employee_id", Name: "employee_id"},
		{Column: "email", Name: "email"},
	},
	SearchFields: []string{"name", "email", "employee_id", "department"},
	DefaultSort:  "created_at DESC",
}

type TeacherController struct {
	DB   *gorm.DB
	repo *repository.Resource[model.TeacherModel]
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{
		DB:   db,
		repo: repository.NewResource[model.TeacherModel](db, teacherSchema),
	}
}

// teachingCourses resolves a teacher's course references to summaries.
// Courses point at teachers, not the other way round, so this is an
// explicit join rather than a preload.
func (ctrl *TeacherController) teachingCourses(ctx context.Context, teacherID any) ([]courseDto.CourseSummary, error) {
	var courses []courseDto.CourseSummary
	err := ctrl.DB.WithContext(ctx).
		Table("courses").
		Select("id, name, code").
		Where("teacher_id = ?", teacherID).
		Order("code ASC").
		Scan(&courses).Error
	return courses, err
}

// =============================
// Get All Teachers
// =============================
func (ctrl *TeacherController) GetAllTeachers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	search := c.Query("search")

	rows, total, err := ctrl.repo.List(c.UserContext(), paging, search)
	if err != nil {
		log.Println("[ERROR] fetching teachers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teachers")
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		courses, err := ctrl.teachingCourses(c.UserContext(), rows[i].ID)
		if err != nil {
			log.Println("[ERROR] resolving teaching courses:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teachers")
		}
		out = append(out, dto.ToTeacherResponse(&rows[i], courses))
	}

	return helper.JsonList(c, out, helper.BuildPagination(total, paging))
}

// =============================
// Get Teacher By ID
// =============================
func (ctrl *TeacherController) GetTeacherByID(c *fiber.Ctx) error {
	row, err := ctrl.repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] fetching teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teacher")
	}

	courses, err := ctrl.teachingCourses(c.UserContext(), row.ID)
	if err != nil {
		log.Println("[ERROR] resolving teaching courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teacher")
	}

	return helper.JsonOK(c, "", dto.ToTeacherResponse(row, courses))
}

// =============================
// Create Teacher
// =============================
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	teacher := model.TeacherModel{
		EmployeeID:     body.EmployeeID,
		Name:           body.Name,
		Email:          body.Email,
		Phone:          body.Phone,
		Department:     body.Department,
		Specialization: body.Specialization,
		Address:        body.Address,
		DateOfBirth:    body.DateOfBirth,
		Experience:     body.Experience,
		Status:         body.Status,
	}
	if teacher.Status == "" {
		teacher.Status = model.StatusActive
	}

	err := ctrl.repo.Create(c.UserContext(), &teacher, []repository.UniqueValue{
		{Field: teacherSchema.UniqueFields[0], Value: body.EmployeeID},
		{Field: teacherSchema.UniqueFields[1], Value: body.Email},
	})
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonConflict(c, conflict.Message, conflict.Field)
		}
		log.Println("[ERROR] creating teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating teacher")
	}

	return helper.JsonCreated(c, "Teacher created successfully", dto.ToTeacherResponse(&teacher, nil))
}

// =============================
// Update Teacher
// =============================
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	var uniques []repository.UniqueValue
	if body.EmployeeID != nil {
		updates["employee_id"] = *body.EmployeeID
		uniques = append(uniques, repository.UniqueValue{Field: teacherSchema.UniqueFields[0], Value: *body.EmployeeID})
	}
	if body.Email != nil {
		updates["email"] = *body.Email
		uniques = append(uniques, repository.UniqueValue{Field: teacherSchema.UniqueFields[1], Value: *body.Email})
	}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.Department != nil {
		updates["department"] = *body.Department
	}
	if body.Specialization != nil {
		updates["specialization"] = *body.Specialization
	}
	if body.Address != nil {
		updates["address"] = *body.Address
	}
	if body.DateOfBirth != nil {
		updates["date_of_birth"] = *body.DateOfBirth
	}
	if body.Experience != nil {
		updates["experience"] = *body.Experience
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}

	row, err := ctrl.repo.Update(c.UserContext(), c.Params("id"), updates, uniques)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonConflict(c, conflict.Message, conflict.Field)
		}
		log.Println("[ERROR] updating teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating teacher")
	}

	courses, err := ctrl.teachingCourses(c.UserContext(), row.ID)
	if err != nil {
		log.Println("[ERROR] resolving teaching courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating teacher")
	}

	return helper.JsonUpdated(c, "Teacher updated successfully", dto.ToTeacherResponse(row, courses))
}

// =============================
// Delete Teacher
// =============================
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	if err := ctrl.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] deleting teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting teacher")
	}

	return helper.JsonDeleted(c, "Teacher deleted successfully")
}
