package controller

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/courses/dto"
	"coursehub_backend/internals/features/academics/courses/model"
	helper "coursehub_backend/internals/helpers"
	"coursehub_backend/internals/repository"
)

var validateCourse = validator.New()

var courseSchema = repository.Schema{
	Entity:   "Course",
	IDColumn: "id",
	UniqueFields: []repository.UniqueField{
		{Column: "code", Name: "code"},
	},
	SearchFields: []string{"name", "code", "description"},
	DefaultSort:  "created_at DESC",
	Preloads:     []string{"Teacher"},
}

// InstructorCourseController owns the instructor-facing read/write path.
type InstructorCourseController struct {
	DB   *gorm.DB
	repo *repository.Resource[model.CourseModel]
}

func NewInstructorCourseController(db *gorm.DB) *InstructorCourseController {
	return &InstructorCourseController{
		DB:   db,
		repo: repository.NewResource[model.CourseModel](db, courseSchema),
	}
}

// enrollmentDetails resolves the enrolled-student references for a course:
// the count plus id/student_id/name/email summaries.
func enrollmentDetails(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (int64, []dto.StudentSummary, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.CourseEnrollmentModel{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return 0, nil, err
	}

	var students []dto.StudentSummary
	err := db.WithContext(ctx).
		Table("students").
		Select("students.id, students.student_id, students.name, students.email").
		Joins("JOIN course_enrollments ON course_enrollments.student_id = students.id").
		Where("course_enrollments.course_id = ?", courseID).
		Order("students.name ASC").
		Scan(&students).Error
	return count, students, err
}

func enrollmentCount(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.CourseEnrollmentModel{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

// =============================
// Get All Courses (instructor)
// =============================
func (ctrl *InstructorCourseController) GetAllCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	search := c.Query("search")

	rows, total, err := ctrl.repo.List(c.UserContext(), paging, search)
	if err != nil {
		log.Println("[ERROR] fetching courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching courses")
	}

	out := make([]dto.CourseResponse, 0, len(rows))
	for i := range rows {
		resp := dto.ToCourseResponse(&rows[i])
		count, err := enrollmentCount(c.UserContext(), ctrl.DB, rows[i].ID)
		if err != nil {
			log.Println("[ERROR] counting enrollments:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching courses")
		}
		resp.Enrolled = count
		out = append(out, resp)
	}

	return helper.JsonList(c, out, helper.BuildPagination(total, paging))
}

// =============================
// Get Course Details (instructor)
// =============================
func (ctrl *InstructorCourseController) GetCourseDetailsByID(c *fiber.Ctx) error {
	row, err := ctrl.repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Println("[ERROR] fetching course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course")
	}

	count, students, err := enrollmentDetails(c.UserContext(), ctrl.DB, row.ID)
	if err != nil {
		log.Println("[ERROR] resolving enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course")
	}

	resp := dto.ToCourseResponse(row)
	resp.Enrolled = count
	resp.Students = students
	return helper.JsonOK(c, "", resp)
}

// =============================
// Add New Course
// =============================
func (ctrl *InstructorCourseController) AddNewCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.TeacherID != nil {
		if err := ctrl.teacherExists(c, *body.TeacherID); err != nil {
			return err
		}
	}

	course := model.CourseModel{
		Code:        body.Code,
		Name:        body.Name,
		Description: body.Description,
		Credits:     body.Credits,
		Capacity:    body.Capacity,
		TeacherID:   body.TeacherID,
		IsActive:    true,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	}
	if course.Capacity == 0 {
		course.Capacity = 30
	}
	if body.IsActive != nil {
		course.IsActive = *body.IsActive
	}

	err := ctrl.repo.Create(c.UserContext(), &course, []repository.UniqueValue{
		{Field: courseSchema.UniqueFields[0], Value: body.Code},
	})
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonConflict(c, conflict.Message, conflict.Field)
		}
		log.Println("[ERROR] creating course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating course")
	}

	return helper.JsonCreated(c, "Course created successfully", dto.ToCourseResponse(&course))
}

// =============================
// Update Course
// =============================
func (ctrl *InstructorCourseController) UpdateCourseByID(c *fiber.Ctx) error {
	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	var uniques []repository.UniqueValue
	if body.Code != nil {
		updates["code"] = *body.Code
		uniques = append(uniques, repository.UniqueValue{Field: courseSchema.UniqueFields[0], Value: *body.Code})
	}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Credits != nil {
		updates["credits"] = *body.Credits
	}
	if body.Capacity != nil {
		updates["capacity"] = *body.Capacity
	}
	if body.TeacherID != nil {
		if err := ctrl.teacherExists(c, *body.TeacherID); err != nil {
			return err
		}
		updates["teacher_id"] = *body.TeacherID
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}
	if body.StartDate != nil {
		updates["start_date"] = *body.StartDate
	}
	if body.EndDate != nil {
		updates["end_date"] = *body.EndDate
	}

	row, err := ctrl.repo.Update(c.UserContext(), c.Params("id"), updates, uniques)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return helper.JsonConflict(c, conflict.Message, conflict.Field)
		}
		log.Println("[ERROR] updating course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating course")
	}

	count, students, err := enrollmentDetails(c.UserContext(), ctrl.DB, row.ID)
	if err != nil {
		log.Println("[ERROR] resolving enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating course")
	}
	resp := dto.ToCourseResponse(row)
	resp.Enrolled = count
	resp.Students = students

	return helper.JsonUpdated(c, "Course updated successfully", resp)
}

// =============================
// Delete Course
// =============================
func (ctrl *InstructorCourseController) DeleteCourseByID(c *fiber.Ctx) error {
	if err := ctrl.repo.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Println("[ERROR] deleting course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting course")
	}

	return helper.JsonDeleted(c, "Course deleted successfully")
}

func (ctrl *InstructorCourseController) teacherExists(c *fiber.Ctx, teacherID uuid.UUID) error {
	var count int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("teachers").
		Where("id = ?", teacherID).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] checking teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error saving course")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Teacher does not exist")
	}
	return nil
}
