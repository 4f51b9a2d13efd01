package task

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/amonks/rtd/internal/validation"
)

// Service implements the task operations on top of a Store.
type Service struct {
	store  *Store
	now    func() time.Time
	render func(Task) string
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Render formats a task for List. Defaults to RenderPlain.
	Render func(Task) string
}

// NewService returns a Service backed by store.
func NewService(store *Store, opts ServiceOptions) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Render == nil {
		opts.Render = RenderPlain
	}
	return &Service{store: store, now: opts.Now, render: opts.Render}
}

// RenderPlain formats a task as a single uncolored line.
func RenderPlain(t Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	deleted := ""
	if t.Deleted {
		deleted = " (deleted)"
	}
	return fmt.Sprintf("%3d %s %s%s\n", t.ID, mark, t.Name, deleted)
}

// Add appends a new task named name.
func (s *Service) Add(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	id, err := s.nextID()
	if err != nil {
		return "", err
	}

	t := Task{
		ID:        id,
		Name:      name,
		CreatedAt: Timestamp(s.now()),
	}
	if err := s.store.Append(Encode(t)); err != nil {
		return "", fmt.Errorf("append task: %w", err)
	}

	return fmt.Sprintf("Added [%d]: %s", t.ID, t.Name), nil
}

func (s *Service) nextID() (uint32, error) {
	tasks, err := s.store.Tasks()
	if err != nil {
		return 0, fmt.Errorf("read tasks: %w", err)
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	var maxID uint32
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if maxID == math.MaxUint32 {
		return 0, ErrIDExhausted
	}
	return maxID + 1, nil
}

// Complete marks the task done.
func (s *Service) Complete(id uint32) (string, error) {
	t, err := s.update(id, func(t *Task) {
		t.Completed = true
		t.CompletedAt = Timestamp(s.now())
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Completed [%d]: %s", t.ID, t.Name), nil
}

// Uncomplete marks the task not done.
func (s *Service) Uncomplete(id uint32) (string, error) {
	t, err := s.update(id, func(t *Task) {
		t.Completed = false
		t.CompletedAt = nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Uncompleted [%d]: %s", t.ID, t.Name), nil
}

// Delete soft-deletes the task. It can be brought back with Restore.
func (s *Service) Delete(id uint32) (string, error) {
	t, err := s.update(id, func(t *Task) {
		t.Deleted = true
		t.DeletedAt = Timestamp(s.now())
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted [%d]: %s", t.ID, t.Name), nil
}

// Restore undoes a soft delete.
func (s *Service) Restore(id uint32) (string, error) {
	t, err := s.update(id, func(t *Task) {
		t.Deleted = false
		t.DeletedAt = nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Restored [%d]: %s", t.ID, t.Name), nil
}

// Destroy removes the task record from the file permanently.
func (s *Service) Destroy(id uint32) (string, error) {
	record, err := s.store.FindByID(id)
	if err != nil {
		return "", err
	}

	deleteCount := int64(record.Length)
	if record.Terminated {
		deleteCount++
	}
	if err := s.store.Splice(record.Offset, deleteCount, ""); err != nil {
		return "", fmt.Errorf("destroy task %d: %w", id, err)
	}

	return fmt.Sprintf("Destroyed [%d]: %s", record.Task.ID, record.Task.Name), nil
}

// update rewrites the record for id in place after applying fn.
func (s *Service) update(id uint32, fn func(*Task)) (Task, error) {
	record, err := s.store.FindByID(id)
	if err != nil {
		return Task{}, err
	}

	updated := record.Task
	fn(&updated)

	if err := s.store.Splice(record.Offset, int64(record.Length), Encode(updated)); err != nil {
		return Task{}, fmt.Errorf("update task %d: %w", id, err)
	}
	return updated, nil
}

// Get returns the task with the given ID.
func (s *Service) Get(id uint32) (Task, error) {
	record, err := s.store.FindByID(id)
	if err != nil {
		return Task{}, err
	}
	return record.Task, nil
}

// Tasks returns the tasks matching filter in file order.
func (s *Service) Tasks(filter Filter) ([]Task, error) {
	if filter == "" {
		filter = FilterAll
	}
	if !filter.IsValid() {
		return nil, validation.FormatInvalidValueError(ErrInvalidFilter, filter, ValidFilters())
	}

	tasks, err := s.store.Tasks()
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	var result []Task
	for _, t := range tasks {
		if filter.Match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// List renders the tasks matching filter and concatenates them.
func (s *Service) List(filter Filter) (string, error) {
	tasks, err := s.Tasks(filter)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for _, t := range tasks {
		builder.WriteString(s.render(t))
	}
	return builder.String(), nil
}
