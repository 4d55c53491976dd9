package services

import (
	"fmt"

	"github.com/craftline/contentflow-api/internal/constants"
	"github.com/craftline/contentflow-api/internal/models"
	"github.com/craftline/contentflow-api/internal/utils"
	"github.com/google/uuid"
)

// generatePlan expands a plan's quotas into the project ledger, its tasks and
// the stage pipelines of every video task. Nothing is persisted here; the
// caller commits the returned graph in one transaction.
func (s *ClientService) generatePlan(client *models.Client, quotas models.PlanQuotas) (*models.Project, []models.Task, []models.VideoStage) {
	project := &models.Project{
		ID:       uuid.NewString(),
		ClientID: client.ID,
		Period:   utils.CurrentPeriod(),
		Status:   models.ProjectActive,
	}
	project.SetTotals(quotas)

	var tasks []models.Task
	var stages []models.VideoStage

	seq := 0
	for _, category := range models.TaskCategories {
		quota := quotas.ForCategory(category)
		for n := 1; n <= quota; n++ {
			seq++
			task := models.Task{
				ID:        uuid.NewString(),
				ProjectID: project.ID,
				ClientID:  client.ID,
				Category:  category,
				Seq:       seq,
				Title:     fmt.Sprintf("%s #%d", category.Label(), n),
				Status:    models.StatusNotStarted,
			}

			if category == models.CategoryVideo {
				stages = append(stages, s.generateStages(task.ID)...)
			} else {
				task.AssignedTo, task.AssignedToName = s.seedAssignee(category.Role())
			}

			tasks = append(tasks, task)
		}
	}

	return project, tasks, stages
}

// generateStages materializes the five-stage pipeline of one video task.
// Stage N depends on stage N-1; stage 1 has no dependency.
func (s *ClientService) generateStages(taskID string) []models.VideoStage {
	stages := make([]models.VideoStage, 0, constants.VideoStageCount)

	var prevID *string
	for i, name := range models.StageNames {
		stage := models.VideoStage{
			ID:          uuid.NewString(),
			TaskID:      taskID,
			StageNumber: i + 1,
			StageName:   name,
			Status:      models.StatusNotStarted,
			DependsOnID: prevID,
		}
		stage.AssignedTo, stage.AssignedToName = s.seedAssignee(models.StageRoleFor(name))

		stages = append(stages, stage)
		id := stage.ID
		prevID = &id
	}

	return stages
}

// seedAssignee samples a qualified staff member through the configured picker.
// An empty candidate list or a lookup failure leaves the work unassigned; a
// manager assigns it by hand later.
func (s *ClientService) seedAssignee(role models.StaffRole) (email, name *string) {
	members, err := s.staffRepo.ListByRole(role)
	if err != nil {
		return nil, nil
	}
	member := s.picker.Pick(members)
	if member == nil {
		return nil, nil
	}
	return &member.Email, &member.Name
}
