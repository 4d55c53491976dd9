package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	tasks  []map[string]interface{}
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error
	suite.db, suite.router, err = newTestRouter()
	suite.Require().NoError(err)

	w, err := performRequest(suite.router, http.MethodPost, "/api/clients", gin.H{
		"business_name": "Task Business",
		"owner_name":    "Task Owner",
		"email":         "tasks@client.com",
		"phone":         "5550001111",
		"plan":          "basic",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var client map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &client))

	w, err = performRequest(suite.router, http.MethodGet, "/api/clients/"+client["id"].(string)+"/project", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var project map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &project))

	w, err = performRequest(suite.router, http.MethodGet, "/api/projects/"+project["id"].(string)+"/tasks", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var taskList struct {
		Tasks []map[string]interface{} `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &taskList))
	suite.Require().Len(taskList.Tasks, 10)
	suite.tasks = taskList.Tasks
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) firstTaskID(category string) string {
	for _, task := range suite.tasks {
		if task["category"] == category {
			return task["id"].(string)
		}
	}
	suite.Require().FailNow("no task of category " + category)
	return ""
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskComplete() {
	postID := suite.firstTaskID("post")

	w, err := performRequest(suite.router, http.MethodPatch, "/api/tasks/"+postID, gin.H{
		"status": "complete",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var task map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	suite.Equal("complete", task["status"])
	suite.NotNil(task["completed_at"])
}

func (suite *TaskHandlerTestSuite) TestUpdateVideoTaskCompleteConflicts() {
	videoID := suite.firstTaskID("video")

	w, err := performRequest(suite.router, http.MethodPatch, "/api/tasks/"+videoID, gin.H{
		"status": "complete",
	})
	suite.Require().NoError(err)
	suite.Equal(http.StatusConflict, w.Code)

	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("INVALID_OPERATION", body["code"])
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskTitleOnly() {
	postID := suite.firstTaskID("post")

	w, err := performRequest(suite.router, http.MethodPatch, "/api/tasks/"+postID, gin.H{
		"title": "Renamed deliverable",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var task map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	suite.Equal("Renamed deliverable", task["title"])
	suite.Equal("not-started", task["status"])
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskNotFound() {
	w, err := performRequest(suite.router, http.MethodPatch, "/api/tasks/no-such-task", gin.H{
		"status": "in-progress",
	})
	suite.Require().NoError(err)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasksByAssignee() {
	// Every post task went to the only designer in the roster.
	w, err := performRequest(suite.router, http.MethodGet, "/api/tasks?assignee=design1@test.agency", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Tasks []map[string]interface{} `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Tasks, 8)
}

func (suite *TaskHandlerTestSuite) TestGetTaskProgressForVideo() {
	videoID := suite.firstTaskID("video")

	w, err := performRequest(suite.router, http.MethodGet, "/api/tasks/"+videoID+"/progress", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var progress map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &progress))
	suite.Equal(float64(0), progress["progress"])
}

func (suite *TaskHandlerTestSuite) TestScriptBriefUnavailableWithoutAI() {
	videoID := suite.firstTaskID("video")

	w, err := performRequest(suite.router, http.MethodPost, "/api/tasks/"+videoID+"/script-brief", nil)
	suite.Require().NoError(err)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
