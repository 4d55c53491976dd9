package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SnapshotHandlerTestSuite defines the test suite for SnapshotHandler
type SnapshotHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *SnapshotHandlerTestSuite) SetupTest() {
	var err error
	suite.db, suite.router, err = newTestRouter()
	suite.Require().NoError(err)
}

// TearDownTest runs after each test
func (suite *SnapshotHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *SnapshotHandlerTestSuite) TestExportImportThroughAPI() {
	w, err := performRequest(suite.router, http.MethodPost, "/api/clients", gin.H{
		"business_name": "Backup Business",
		"owner_name":    "Backup Owner",
		"email":         "backup@client.com",
		"phone":         "5550001111",
		"plan":          "basic",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w, err = performRequest(suite.router, http.MethodGet, "/api/snapshot", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var snap map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	suite.Len(snap["clients"].([]interface{}), 1)
	suite.Len(snap["tasks"].([]interface{}), 10)
	suite.Len(snap["stages"].([]interface{}), 10)

	// A second client appears, then restoring the snapshot removes it.
	w, err = performRequest(suite.router, http.MethodPost, "/api/clients", gin.H{
		"business_name": "Transient Business",
		"owner_name":    "Transient Owner",
		"email":         "transient@client.com",
		"phone":         "5550002222",
		"plan":          "basic",
	})
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w, err = performRequest(suite.router, http.MethodPut, "/api/snapshot", snap)
	suite.Require().NoError(err)
	suite.Equal(http.StatusNoContent, w.Code)

	w, err = performRequest(suite.router, http.MethodGet, "/api/clients", nil)
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Clients []map[string]interface{} `json:"clients"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Clients, 1)
	suite.Equal("backup@client.com", body.Clients[0]["email"])
}

func (suite *SnapshotHandlerTestSuite) TestImportRejectsInvalidBody() {
	req, err := http.NewRequest(http.MethodPut, "/api/snapshot", nil)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Email", testActor)

	w := performRaw(suite.router, req)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestSnapshotHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotHandlerTestSuite))
}
