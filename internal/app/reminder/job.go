package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"rtodo/internal/core/domain"
	"rtodo/internal/core/ports"
)

const digestSubject = "Reminder: Tasks due tomorrow"

// Job sends each owner one digest email listing their tasks due tomorrow.
type Job struct {
	taskRepository ports.TaskRepository
	mailer         ports.Mailer
	location       *time.Location
	siteURL        string
	now            func() time.Time
}

func NewJob(taskRepository ports.TaskRepository, mailer ports.Mailer, location *time.Location, siteURL string) *Job {
	return &Job{
		taskRepository: taskRepository,
		mailer:         mailer,
		location:       location,
		siteURL:        siteURL,
		now:            time.Now,
	}
}

func (j *Job) Run(ctx context.Context) error {
	target := j.targetDate()

	due, err := j.taskRepository.ListDueOn(ctx, target)
	if err != nil {
		return fmt.Errorf("list tasks due on %s: %w", target.Format("2006-01-02"), err)
	}
	if len(due) == 0 {
		return nil
	}

	owners, groups := groupByOwner(due)

	sent := 0
	for _, ownerID := range owners {
		tasks := groups[ownerID]
		body := digestBody(tasks, j.siteURL)

		if err := j.mailer.Send(ctx, tasks[0].OwnerEmail, digestSubject, body); err != nil {
			// One owner's delivery failure must not block the rest of the
			// batch; the next scheduled run recomputes due tasks anyway.
			zap.L().Error("failed to send reminder digest",
				zap.Uint64("owner_id", ownerID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	zap.L().Info("reminder run finished",
		zap.String("target_date", target.Format("2006-01-02")),
		zap.Int("owners", len(owners)),
		zap.Int("sent", sent),
	)

	return nil
}

// targetDate is tomorrow's calendar date in the configured time zone.
func (j *Job) targetDate() time.Time {
	now := j.now().In(j.location)
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, j.location)
}

func groupByOwner(due []domain.DueTask) ([]uint64, map[uint64][]domain.DueTask) {
	owners := make([]uint64, 0)
	groups := make(map[uint64][]domain.DueTask)

	for _, task := range due {
		ownerID := task.Task.OwnerID
		if _, seen := groups[ownerID]; !seen {
			owners = append(owners, ownerID)
		}
		groups[ownerID] = append(groups[ownerID], task)
	}

	return owners, groups
}

func digestBody(tasks []domain.DueTask, siteURL string) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf("- %s (%s)", task.Task.Title, capitalize(string(task.Task.Priority))))
	}

	return "Hi,\n\nYou have tasks due tomorrow:\n\n" + strings.Join(lines, "\n") + "\n\n" + siteURL
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
