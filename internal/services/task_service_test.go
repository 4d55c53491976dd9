package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/craftline/contentflow-api/internal/models"
	"github.com/stretchr/testify/suite"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	project *models.Project
	tasks   []models.Task
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	db, err := openTestDB()
	suite.Require().NoError(err)

	suite.env, err = newTestEnv(db)
	suite.Require().NoError(err)

	client, err := suite.env.createClient("rollup@client.com", models.PlanBasic)
	suite.Require().NoError(err)

	suite.project, err = suite.env.clients.GetCurrentProject(client.ID)
	suite.Require().NoError(err)

	suite.tasks, err = suite.env.tasks.ListTasksByProject(suite.project.ID)
	suite.Require().NoError(err)
	suite.Require().Len(suite.tasks, 10)
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.env.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) firstTaskOf(category models.TaskCategory) *models.Task {
	for i := range suite.tasks {
		if suite.tasks[i].Category == category {
			return &suite.tasks[i]
		}
	}
	suite.Require().FailNow("no task of category " + string(category))
	return nil
}

func (suite *TaskServiceTestSuite) setStatus(taskID string, status models.WorkStatus) (*models.Task, error) {
	return suite.env.tasks.UpdateTask(taskID, UpdateTaskInput{Status: &status})
}

func (suite *TaskServiceTestSuite) TestCompletingPostIncrementsCounter() {
	post := suite.firstTaskOf(models.CategoryPost)

	updated, err := suite.setStatus(post.ID, models.StatusComplete)
	suite.Require().NoError(err)
	suite.Equal(models.StatusComplete, updated.Status)
	suite.NotNil(updated.CompletedAt)

	project, err := suite.env.projectRepo.FindByID(suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(1, project.CompletedPosts)
	suite.Equal(0, project.CompletedVideos)
}

func (suite *TaskServiceTestSuite) TestCompletingTwiceDoesNotDoubleIncrement() {
	post := suite.firstTaskOf(models.CategoryPost)

	_, err := suite.setStatus(post.ID, models.StatusComplete)
	suite.Require().NoError(err)
	_, err = suite.setStatus(post.ID, models.StatusComplete)
	suite.Require().NoError(err)

	project, err := suite.env.projectRepo.FindByID(suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(1, project.CompletedPosts)
}

func (suite *TaskServiceTestSuite) TestConcurrentCompletionsBothCounted() {
	var posts []string
	for _, task := range suite.tasks {
		if task.Category == models.CategoryPost {
			posts = append(posts, task.ID)
		}
	}
	suite.Require().GreaterOrEqual(len(posts), 2)

	start := make(chan struct{})
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, taskID := range posts[:2] {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			<-start
			status := models.StatusComplete
			_, err := suite.env.tasks.UpdateTask(id, UpdateTaskInput{Status: &status})
			errs <- err
		}(taskID)
	}
	close(start)
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.Require().NoError(err)
	}

	project, err := suite.env.projectRepo.FindByID(suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(2, project.CompletedPosts)
}

func (suite *TaskServiceTestSuite) TestRevertingCompletedTaskDecrementsCounter() {
	post := suite.firstTaskOf(models.CategoryPost)

	_, err := suite.setStatus(post.ID, models.StatusComplete)
	suite.Require().NoError(err)

	reverted, err := suite.setStatus(post.ID, models.StatusInProgress)
	suite.Require().NoError(err)
	suite.Nil(reverted.CompletedAt)

	project, err := suite.env.projectRepo.FindByID(suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(0, project.CompletedPosts)
	suite.Equal(models.ProjectActive, project.Status)
}

func (suite *TaskServiceTestSuite) TestVideoTaskRejectsDirectCompletion() {
	video := suite.firstTaskOf(models.CategoryVideo)

	_, err := suite.setStatus(video.ID, models.StatusComplete)
	suite.True(errors.Is(err, ErrVideoTaskManual))

	reloaded, err := suite.env.tasks.GetTask(video.ID)
	suite.Require().NoError(err)
	suite.Equal(models.StatusNotStarted, reloaded.Status)

	// Moving a video task to in-progress stays allowed.
	updated, err := suite.setStatus(video.ID, models.StatusInProgress)
	suite.Require().NoError(err)
	suite.Equal(models.StatusInProgress, updated.Status)
}

func (suite *TaskServiceTestSuite) TestPartialPatchPreservesUntouchedFields() {
	post := suite.firstTaskOf(models.CategoryPost)
	originalAssignee := post.AssignedTo

	title := "October brand post"
	updated, err := suite.env.tasks.UpdateTask(post.ID, UpdateTaskInput{Title: &title})
	suite.Require().NoError(err)

	suite.Equal(title, updated.Title)
	suite.Equal(post.Status, updated.Status)
	suite.Equal(originalAssignee, updated.AssignedTo)
}

func (suite *TaskServiceTestSuite) TestClearAssignee() {
	post := suite.firstTaskOf(models.CategoryPost)
	suite.Require().NotNil(post.AssignedTo)

	updated, err := suite.env.tasks.UpdateTask(post.ID, UpdateTaskInput{ClearAssignee: true})
	suite.Require().NoError(err)
	suite.Nil(updated.AssignedTo)
	suite.Nil(updated.AssignedToName)
}

func (suite *TaskServiceTestSuite) TestCompletingEveryDeliverableCompletesProject() {
	for _, task := range suite.tasks {
		if task.Category == models.CategoryVideo {
			stages, err := suite.env.stages.ListStagesByTask(task.ID)
			suite.Require().NoError(err)
			for _, stage := range stages {
				status := models.StatusComplete
				_, err := suite.env.stages.UpdateStage(stage.ID, UpdateStageInput{Status: &status})
				suite.Require().NoError(err)
			}
			continue
		}
		_, err := suite.setStatus(task.ID, models.StatusComplete)
		suite.Require().NoError(err)
	}

	project, err := suite.env.projectRepo.FindByID(suite.project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ProjectCompleted, project.Status)
	suite.Equal(project.TotalDeliverables(), project.CompletedDeliverables())
}

func (suite *TaskServiceTestSuite) TestUpdateTaskInvalidStatus() {
	post := suite.firstTaskOf(models.CategoryPost)
	status := models.WorkStatus("finished")
	_, err := suite.env.tasks.UpdateTask(post.ID, UpdateTaskInput{Status: &status})
	suite.True(errors.Is(err, ErrInvalidStatus))
}

func (suite *TaskServiceTestSuite) TestUpdateTaskNotFound() {
	_, err := suite.setStatus("missing-task-id", models.StatusComplete)
	suite.True(errors.Is(err, ErrTaskNotFound))
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
