// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/bizsuite/backend/internal/application/usecase/manualentry"
	"github.com/bizsuite/backend/internal/application/usecase/statement"
	"github.com/bizsuite/backend/internal/infra/server/router"
	"github.com/bizsuite/backend/internal/integration/adapters"
	"github.com/bizsuite/backend/internal/integration/entrypoint/controller"
	"github.com/bizsuite/backend/internal/integration/entrypoint/middleware"
	"github.com/bizsuite/backend/internal/integration/persistence"
	"github.com/bizsuite/backend/internal/integration/persistence/model"
	"github.com/bizsuite/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	redis       *goredis.Client
	serverPort  int
	accessToken string
	lastEntryID string
}

type response struct {
	status int
	body   []byte
}

var serverInit sync.Once
var testDB *mock.Db
var testRedis *goredis.Client
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		redis:      mock.NewRedis(),
		db: mock.NewDb("bizsuite", map[string]any{
			"business_records": &model.BusinessRecordModel{},
			"salary_payments":  &model.SalaryPaymentModel{},
			"agency_sales":     &model.AgencySaleModel{},
			"manual_entries":   &model.ManualEntryModel{},
			"investments":      &model.InvestmentModel{},
		}),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Auth steps
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Seeding steps
	ctx.Given(`^the following business records exist:$`, test.theFollowingBusinessRecordsExist)
	ctx.Given(`^the following salary payments exist:$`, test.theFollowingSalaryPaymentsExist)
	ctx.Given(`^the following agency sales exist:$`, test.theFollowingAgencySalesExist)
	ctx.Given(`^the following investments exist:$`, test.theFollowingInvestmentsExist)
	ctx.Given(`^the following manual entries exist:$`, test.theFollowingManualEntriesExist)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I send a "([^"]*)" request to the last created entry$`, test.iSendARequestToTheLastCreatedEntry)
	ctx.When(`^I send a "([^"]*)" request to the last created entry with body:$`, test.iSendARequestToTheLastCreatedEntryWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.lastEntryID = ""
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		_ = mock.ClearRedis(t.redis)
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			businessSalesRepo := persistence.NewBusinessSalesRepository(testDB.DbConn)
			payrollRepo := persistence.NewPayrollRepository(testDB.DbConn)
			agencySalesRepo := persistence.NewAgencySalesRepository(testDB.DbConn)
			manualEntryRepo := persistence.NewManualEntryRepository(testDB.DbConn)
			investmentRepo := persistence.NewInvestmentRepository(testDB.DbConn)

			// Snapshot cache backed by the miniredis instance
			snapshotCache := adapters.NewRedisSnapshotCache(testRedis, 5*time.Minute)

			// Statement engine sources
			sources := []statement.Source{
				statement.NewBusinessSalesAdapter(businessSalesRepo),
				statement.NewPayrollAdapter(payrollRepo),
				statement.NewAgencyCommissionAdapter(agencySalesRepo),
				statement.NewManualEntryAdapter(manualEntryRepo),
				statement.NewInvestmentAdapter(investmentRepo),
			}

			// Create use cases
			computeUseCase := statement.NewComputeStatementUseCase(sources, snapshotCache)
			summaryUseCase := statement.NewComputeSummaryUseCase(payrollRepo, agencySalesRepo)

			createEntryUseCase := manualentry.NewCreateEntryUseCase(manualEntryRepo, snapshotCache)
			listEntriesUseCase := manualentry.NewListEntriesUseCase(manualEntryRepo)
			updateEntryUseCase := manualentry.NewUpdateEntryUseCase(manualEntryRepo, snapshotCache)
			deleteEntryUseCase := manualentry.NewDeleteEntryUseCase(manualEntryRepo, snapshotCache)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return testRedis.Ping(context.Background()).Err() == nil },
			)
			statementController := controller.NewStatementController(computeUseCase, summaryUseCase)
			manualEntryController := controller.NewManualEntryController(
				createEntryUseCase,
				listEntriesUseCase,
				updateEntryUseCase,
				deleteEntryUseCase,
			)

			// Create middleware
			statementRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(testJWTSecret)

			r := router.NewRouter(healthController, statementController, manualEntryController, statementRateLimiter, authMiddleware)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// Tokens are issued by the identity provider in production; the suite
// signs its own with the shared test secret.
func (t *testContext) iAmAuthenticated() error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "test-user",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign test token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.sendRequest(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	return t.sendRequest(method, endpoint, bytes.NewBufferString(body.Content))
}

func (t *testContext) iSendARequestToTheLastCreatedEntry(method string) error {
	if t.lastEntryID == "" {
		return fmt.Errorf("no entry has been created yet")
	}
	return t.sendRequest(method, "/api/v1/manual-entries/"+t.lastEntryID, nil)
}

func (t *testContext) iSendARequestToTheLastCreatedEntryWithBody(method string, body *godog.DocString) error {
	if t.lastEntryID == "" {
		return fmt.Errorf("no entry has been created yet")
	}
	return t.sendRequest(method, "/api/v1/manual-entries/"+t.lastEntryID, bytes.NewBufferString(body.Content))
}

func (t *testContext) sendRequest(method, endpoint string, body *bytes.Buffer) error {
	var reader *bytes.Buffer
	if body == nil {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = body
	}

	req, err := http.NewRequest(method, t.uri+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = &response{status: resp.StatusCode, body: buf.Bytes()}
	t.rememberEntryID()
	return nil
}

// rememberEntryID keeps the id of a freshly created manual entry so later
// steps can address it without hardcoding UUIDs in feature files.
func (t *testContext) rememberEntryID() {
	if t.response == nil || t.response.status != http.StatusCreated {
		return
	}
	var data map[string]any
	if err := json.Unmarshal(t.response.body, &data); err != nil {
		return
	}
	if id, ok := data["id"].(string); ok {
		t.lastEntryID = id
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.status, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	var js json.RawMessage
	if err := json.Unmarshal(t.response.body, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if !strings.Contains(string(t.response.body), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'. Body: %s", field, expected, actual, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

// responseField resolves a dot-separated path into the response JSON, so
// rollup fields like "pl.net_profit" can be asserted directly.
func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, fmt.Errorf("no response received")
	}

	var data any
	if err := json.Unmarshal(t.response.body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(field, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field '%s' not found in response: '%s' is not an object", field, part)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field '%s' not found in response. Body: %s", field, string(t.response.body))
		}
	}
	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expected int, table string) error {
	if _, ok := t.db.GetModel(table); !ok {
		return fmt.Errorf("unknown table %q", table)
	}

	var count int64
	if err := t.db.DbConn.Table(table).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d objects in %s, got %d", expected, table, count)
	}
	return nil
}
