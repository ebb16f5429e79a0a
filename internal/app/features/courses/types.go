// internal/app/features/courses/types.go
package courses

import (
	"github.com/mahirsiam2004/altrion-server/internal/app/system/htmlsanitize"
	"github.com/mahirsiam2004/altrion-server/internal/app/system/normalize"
	"github.com/mahirsiam2004/altrion-server/internal/domain/models"
)

// Request bodies. Server-owned fields (_id, enrolledStudents, rating,
// createdAt, updatedAt) have no field here, so the decoder drops them.

type instructorInput struct {
	Name  string `json:"name" validate:"max=120" label:"Instructor name"`
	Email string `json:"email" validate:"required,email" label:"Instructor email"`
	Photo string `json:"photo" validate:"omitempty,httpurl" label:"Instructor photo"`
}

func (in *instructorInput) clean() {
	in.Name = htmlsanitize.Text(in.Name)
	in.Email = normalize.Email(in.Email)
	in.Photo = normalize.QueryParam(in.Photo)
}

func (in instructorInput) model() models.Instructor {
	return models.Instructor{Name: in.Name, Email: in.Email, Photo: in.Photo}
}

type createInput struct {
	Title       string          `json:"title" validate:"required,max=200" label:"Title"`
	Description string          `json:"description" validate:"max=20000" label:"Description"`
	Category    string          `json:"category" validate:"required,max=80" label:"Category"`
	Instructor  instructorInput `json:"instructor" label:"Instructor"`
	Image       string          `json:"image" validate:"omitempty,httpurl" label:"Image"`
	Price       float64         `json:"price" validate:"gte=0" label:"Price"`
	Duration    string          `json:"duration" validate:"max=80" label:"Duration"`
	Level       string          `json:"level" validate:"max=40" label:"Level"`
	IsFeatured  bool            `json:"isFeatured"`
}

func (in *createInput) clean() {
	in.Title = htmlsanitize.Text(in.Title)
	in.Description = htmlsanitize.Sanitize(in.Description)
	in.Category = normalize.Category(htmlsanitize.Text(in.Category))
	in.Instructor.clean()
	in.Image = normalize.QueryParam(in.Image)
	in.Duration = htmlsanitize.Text(in.Duration)
	in.Level = htmlsanitize.Text(in.Level)
}

func (in createInput) model() models.Course {
	return models.Course{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Instructor:  in.Instructor.model(),
		Image:       in.Image,
		Price:       in.Price,
		Duration:    in.Duration,
		Level:       in.Level,
		IsFeatured:  in.IsFeatured,
	}
}

// updateInput: a nil field is absent from the body and left unchanged.
type updateInput struct {
	Title       *string          `json:"title" validate:"omitnil,required,max=200" label:"Title"`
	Description *string          `json:"description" validate:"omitnil,max=20000" label:"Description"`
	Category    *string          `json:"category" validate:"omitnil,required,max=80" label:"Category"`
	Instructor  *instructorInput `json:"instructor" validate:"omitnil" label:"Instructor"`
	Image       *string          `json:"image" validate:"omitempty,httpurl" label:"Image"`
	Price       *float64         `json:"price" validate:"omitnil,gte=0" label:"Price"`
	Duration    *string          `json:"duration" validate:"omitnil,max=80" label:"Duration"`
	Level       *string          `json:"level" validate:"omitnil,max=40" label:"Level"`
	IsFeatured  *bool            `json:"isFeatured"`
}

func cleanPtr(p *string, f func(string) string) {
	if p != nil {
		*p = f(*p)
	}
}

func (in *updateInput) clean() {
	cleanPtr(in.Title, htmlsanitize.Text)
	cleanPtr(in.Description, htmlsanitize.Sanitize)
	cleanPtr(in.Category, func(s string) string { return normalize.Category(htmlsanitize.Text(s)) })
	if in.Instructor != nil {
		in.Instructor.clean()
	}
	cleanPtr(in.Image, normalize.QueryParam)
	cleanPtr(in.Duration, htmlsanitize.Text)
	cleanPtr(in.Level, htmlsanitize.Text)
}

func (in updateInput) patch() models.CoursePatch {
	p := models.CoursePatch{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Image:       in.Image,
		Price:       in.Price,
		Duration:    in.Duration,
		Level:       in.Level,
		IsFeatured:  in.IsFeatured,
	}
	if in.Instructor != nil {
		m := in.Instructor.model()
		p.Instructor = &m
	}
	return p
}
