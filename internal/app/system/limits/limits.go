// internal/app/system/limits/limits.go
package limits

// Request body size limits for the JSON write endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxCourseBody bounds POST/PUT /courses. Descriptions may carry
	// sanitized HTML, so this is generous.
	MaxCourseBody = 256 << 10 // 256 KB

	// MaxEnrollmentBody bounds POST /enrollments.
	MaxEnrollmentBody = 4 << 10 // 4 KB
)
