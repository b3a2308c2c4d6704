package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/courses/dto"
	"coursehub_backend/internals/features/academics/courses/model"
	helper "coursehub_backend/internals/helpers"
	"coursehub_backend/internals/repository"
)

// StudentCourseController is the student-facing read path over the same
// course store, plus enrollment.
type StudentCourseController struct {
	DB   *gorm.DB
	repo *repository.Resource[model.CourseModel]
}

func NewStudentCourseController(db *gorm.DB) *StudentCourseController {
	return &StudentCourseController{
		DB:   db,
		repo: repository.NewResource[model.CourseModel](db, courseSchema),
	}
}

func activeOnly(q *gorm.DB) *gorm.DB {
	return q.Where("is_active = ?", true)
}

// =============================
// Get All Courses (student view)
// =============================
// Students only see active courses.
func (ctrl *StudentCourseController) GetAllStudentViewCourses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	search := c.Query("search")

	rows, total, err := ctrl.repo.List(c.UserContext(), paging, search, activeOnly)
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
// Get Course Details (student view)
// =============================
func (ctrl *StudentCourseController) GetStudentViewCourseDetails(c *fiber.Ctx) error {
	row, err := ctrl.repo.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Println("[ERROR] fetching course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course")
	}
	if !row.IsActive {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	count, err := enrollmentCount(c.UserContext(), ctrl.DB, row.ID)
	if err != nil {
		log.Println("[ERROR] counting enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course")
	}

	resp := dto.ToCourseResponse(row)
	resp.Enrolled = count
	return helper.JsonOK(c, "", resp)
}

// =============================
// Enroll Student
// =============================
// POST /enroll/:id. The composite primary key on course_enrollments is the
// authoritative duplicate guard; the capacity check is best effort.
func (ctrl *StudentCourseController) EnrollStudent(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var body dto.EnrollRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.StudentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is required")
	}

	var course model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Println("[ERROR] fetching course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error enrolling student")
	}
	if !course.IsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course is not open for enrollment")
	}

	var studentCount int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Table("students").
		Where("id = ?", body.StudentID).
		Count(&studentCount).Error; err != nil {
		log.Println("[ERROR] checking student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error enrolling student")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	enrolled, err := enrollmentCount(c.UserContext(), ctrl.DB, courseID)
	if err != nil {
		log.Println("[ERROR] counting enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error enrolling student")
	}
	if enrolled >= int64(course.Capacity) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course is full")
	}

	enrollment := model.CourseEnrollmentModel{
		CourseID:  courseID,
		StudentID: body.StudentID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&enrollment).Error; err != nil {
		if repository.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student is already enrolled in this course")
		}
		log.Println("[ERROR] creating enrollment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error enrolling student")
	}

	return helper.JsonCreated(c, "Student enrolled successfully", enrollment)
}

// =============================
// Get Courses By Student ID
// =============================
func (ctrl *StudentCourseController) GetCoursesByStudentID(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var courses []model.CourseModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Teacher").
		Joins("JOIN course_enrollments ON course_enrollments.course_id = courses.id").
		Where("course_enrollments.student_id = ?", studentID).
		Order("courses.code ASC").
		Find(&courses).Error; err != nil {
		log.Println("[ERROR] fetching enrolled courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching enrolled courses")
	}

	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, dto.ToCourseResponse(&courses[i]))
	}
	return helper.JsonOK(c, "", out)
}
