package services

import (
	"log"

	"github.com/rosemaria96/SmartCampusSystem/app/database"
)

// Event names emitted on entity creation.
const (
	CourseCreated       = "course.created"
	StudentCreated      = "student.created"
	FeeStructureCreated = "fee_structure.created"
)

// Event is an in-process domain event carrying the created entity.
type Event struct {
	Name    string
	Payload interface{}
}

// Handler reacts to an event. Critical handlers abort the emitting
// operation on failure (the caller rolls back its transaction).
// Non-critical handlers are best-effort: their errors are logged and
// surfaced as warnings, never escalated.
type Handler struct {
	Name     string
	Critical bool
	Fn       func(q database.DBTX, e Event) error
}

// Dispatcher routes events to statically registered handlers.
type Dispatcher struct {
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

func (d *Dispatcher) Register(event string, h Handler) {
	d.handlers[event] = append(d.handlers[event], h)
}

// Emit runs every handler registered for the event, in registration
// order. It returns the warnings collected from failed non-critical
// handlers, and an error only when a critical handler fails.
func (d *Dispatcher) Emit(q database.DBTX, e Event) ([]string, error) {
	var warnings []string
	for _, h := range d.handlers[e.Name] {
		if err := h.Fn(q, e); err != nil {
			if h.Critical {
				return warnings, err
			}
			log.Printf("Handler %s failed for %s: %v", h.Name, e.Name, err)
			warnings = append(warnings, h.Name+": "+err.Error())
		}
	}
	return warnings, nil
}

// dispatcher is the engine's wired instance. Registration happens once at
// startup; the sequence for course.created matters because semesters must
// exist before anything references them.
var dispatcher = NewDispatcher()

func init() {
	dispatcher.Register(CourseCreated, Handler{
		Name:     "semester_generator",
		Critical: true,
		Fn:       generateSemestersHandler,
	})
	dispatcher.Register(StudentCreated, Handler{
		Name: "fee_synchronizer",
		Fn:   assignFeesToStudentHandler,
	})
	dispatcher.Register(FeeStructureCreated, Handler{
		Name: "fee_synchronizer",
		Fn:   assignFeesForStructureHandler,
	})
}
