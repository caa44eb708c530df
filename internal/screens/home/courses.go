package home

// MathCourse is the only course with content. Selection compares labels
// exactly.
const MathCourse = "Mathematics Course"

// Courses lists the home tiles in display order.
var Courses = []string{
	"Computer Science Course",
	"English Course",
	MathCourse,
	"Physics Course",
	"German Course",
	"Physical Education Course",
}
