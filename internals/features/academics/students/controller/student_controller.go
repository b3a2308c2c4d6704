package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/students/dto"
	"coursehub_backend/internals/features/academics/students/model"
	helper "coursehub_backend/internals/helpers"
	"coursehub_backend/internals/repository"
)

var validateStudent = validator.New()

var studentSchema = repository.Schema{
	Entity:   "Student",
	IDColumn: "id",
	UniqueFields: []repository.UniqueField{
		{Column: "student_id", Name: "student_id"},
		{Column: "email", Name: "email"},
	},
	SearchFields: []string{"name", "email", "student_id", "program"},
	DefaultSort:  "created_at DESC",
	Preloads:     []string{"EnrolledCourses"},
}

type StudentController struct {
	repo *repository.Resource[model.StudentModel]
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		repo: repository.NewResource[model.StudentModel](db, studentSchema),
	}
}

// =============================
// Get All Students
// =============================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	search := c.Query("search")

	rows, total, err := ctrl.repo.List(c.UserContext(), paging, search)
	if err != nil {
		log.Println("[ERROR] fetching students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching students")
	}

	return helper.JsonList(c, dto.ToStudentResponses(rows), helper.BuildPagination(total, paging))
}

// =============================
// Get Student By ID
// =============================
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	row, err := ctrl.repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] fetching student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching student")
	}

	return helper.JsonOK(c, "", dto.ToStudentResponse(row))
}

// =============================
// Create Student
// =============================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student := model.StudentModel{
		StudentID:   body.StudentID,
		Name:        body.Name,
		Email:       body.Email,
		Phone:       body.Phone,
		Program:     body.Program,
		Year:        body.Year,
		Address:     body.Address,
		DateOfBirth: body.DateOfBirth,
		Status:      body.Status,
	}
	if student.Year == 0 {
		student.Year = 1
	}
	if student.Status == "" {
		student.Status = model.StatusActive
	}

	err := ctrl.repo.Create(c.UserContext(), &student, []repository.UniqueValue{
		{Field: studentSchema.UniqueFields[0], Value: body.StudentID},
		{Field: studentSchema.UniqueFields[1], Value: body.Email},
	})
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonConflict(c, conflict.Message, conflict.Field)
		}
		log.Println("[ERROR] creating student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating student")
	}

	return helper.JsonCreated(c, "Student created successfully", dto.ToStudentResponse(&student))
}

// =============================
// Update Student
// =============================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	var uniques []repository.UniqueValue
	if body.StudentID != nil {
		updates["student_id"] = *body.StudentID
		uniques = append(uniques, repository.UniqueValue{Field: studentSchema.UniqueFields[0], Value: *body.StudentID})
	}
	if body.Email != nil {
		updates["email"] = *body.Email
		uniques = append(uniques, repository.UniqueValue{Field: studentSchema.UniqueFields[1], Value: *body.Email})
	}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.Program != nil {
		updates["program"] = *body.Program
	}
	if body.Year != nil {
		updates["year"] = *body.Year
	}
	if body.Address != nil {
		updates["address"] = *body.Address
	}
	if body.DateOfBirth != nil {
		updates["date_of_birth"] = *body.DateOfBirth
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}

	row, err := ctrl.repo.Update(c.UserContext(), c.Params("id"), updates, uniques)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonConflict(c, conflict.Message, conflict.Field)
		}
		log.Println("[ERROR] updating student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}

	return helper.JsonUpdated(c, "Student updated successfully", dto.ToStudentResponse(row))
}

// =============================
// Delete Student
// =============================
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	if err := ctrl.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] deleting student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting student")
	}

	return helper.JsonDeleted(c, "Student deleted successfully")
}
