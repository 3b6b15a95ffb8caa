package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	"github.com/habit-tracker/backend/internal/application/usecase/motivation"
	"github.com/habit-tracker/backend/internal/application/usecase/notification"
	"github.com/habit-tracker/backend/internal/application/usecase/progress"
	"github.com/habit-tracker/backend/internal/application/usecase/reminder"
	"github.com/habit-tracker/backend/internal/application/usecase/streak"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	clock         *mock.Clock
	serverPort    int
	accessToken   string
	currentUserID uuid.UUID
	otherUserID   uuid.UUID
	currentGoalID uuid.UUID
	goalDuration  int
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		clock:      mock.NewClock(),
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"goals":         &model.GoalModel{},
			"goal_progress": &model.GoalProgressModel{},
			"streaks":       &model.StreakModel{},
			"reminders":     &model.ReminderModel{},
			"profiles":      &model.ProfileModel{},
		}),
	}

	testDB = test.db
	testClock = test.clock

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^a user exists$`, test.aUserExists)
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)

	// Data setup steps
	ctx.Given(`^an active goal "([^"]*)" exists with target (\d+) "([^"]*)" over (\d+) days$`, test.anActiveGoalExists)
	ctx.Given(`^the goal started (\d+) days ago$`, test.theGoalStartedDaysAgo)
	ctx.Given(`^the goal has reminder frequency "([^"]*)"$`, test.theGoalHasReminderFrequency)
	// Used in both setup and mid-scenario positions.
	ctx.Step(`^the goal has current progress of (\d+(?:\.\d+)?)$`, test.theGoalHasCurrentProgress)
	ctx.Given(`^a streak of type "([^"]*)" exists with count (\d+) and best (\d+) last updated (\d+) days? ago$`, test.aStreakExists)
	ctx.Given(`^a profile exists with display name "([^"]*)"$`, test.aProfileExists)

	// Time steps
	ctx.When(`^the clock advances (\d+) days?$`, test.theClockAdvancesDays)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
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
	t.currentUserID = uuid.New()
	t.otherUserID = uuid.New()
	t.currentGoalID = uuid.Nil
	t.goalDuration = 0

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			progressRepo := persistence.NewProgressRepository(testDB.DbConn)
			streakRepo := persistence.NewStreakRepository(testDB.DbConn)
			reminderRepo := persistence.NewReminderRepository(testDB.DbConn)
			profileRepo := persistence.NewProfileRepository(testDB.DbConn)

			// Create adapters/services
			tokenService := adapters.NewTokenService(testJWTSecret)
			motivationService := adapters.NewGeminiService("", "")
			dashboardCache := cache.NewDashboardCache(mock.NewRedis(), time.Minute)

			// Create use cases
			createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, testClock)
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
			getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
			deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, dashboardCache)

			recomputeGoalUseCase := progress.NewRecomputeGoalUseCase(goalRepo, progressRepo)
			recordProgressUseCase := progress.NewRecordProgressUseCase(goalRepo, progressRepo, recomputeGoalUseCase, dashboardCache, testClock)

			advanceStreakUseCase := streak.NewAdvanceStreakUseCase(streakRepo, testClock)
			checkDeadlinesUseCase := notification.NewCheckDeadlinesUseCase(goalRepo, testClock)
			getDashboardUseCase := dashboard.NewGetDashboardUseCase(goalRepo, dashboardCache, testClock)
			generateRemindersUseCase := reminder.NewGenerateRemindersUseCase(goalRepo, reminderRepo, testClock)
			getMotivationUseCase := motivation.NewGetMotivationUseCase(profileRepo, goalRepo, streakRepo, motivationService)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			goalController := controller.NewGoalController(
				createGoalUseCase,
				listGoalsUseCase,
				getGoalUseCase,
				deleteGoalUseCase,
			)
			progressController := controller.NewProgressController(recordProgressUseCase)
			streakController := controller.NewStreakController(advanceStreakUseCase)
			notificationController := controller.NewNotificationController(checkDeadlinesUseCase)
			dashboardController := controller.NewDashboardController(getDashboardUseCase)
			reminderController := controller.NewReminderController(generateRemindersUseCase)
			motivationController := controller.NewMotivationController(getMotivationUseCase)

			// Create middleware
			motivationRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				goalController,
				progressController,
				streakController,
				notificationController,
				dashboardController,
				reminderController,
				motivationController,
				motivationRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
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

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	// Pin the clock to midday so day arithmetic never straddles midnight.
	t.clock.SetNow(time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC))
	return nil
}

func (t *testContext) aUserExists() error {
	t.currentUserID = uuid.New()
	return nil
}

func (t *testContext) iAmAuthenticated() error {
	now := t.clock.Now()
	claims := jwt.MapClaims{
		"user_id": t.currentUserID.String(),
		"email":   "test@example.com",
		"exp":     jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		"iat":     jwt.NewNumericDate(now),
		"sub":     t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign access token: %w", err)
	}
	t.accessToken = signed
	return nil
}

func (t *testContext) today() time.Time {
	now := t.clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (t *testContext) anActiveGoalExists(goalType string, target int, unit string, durationDays int) error {
	goalID := uuid.New()
	t.currentGoalID = goalID
	t.goalDuration = durationDays

	start := t.today()
	end := start.AddDate(0, 0, durationDays)
	duration := durationDays
	now := t.clock.Now()

	goalModel := &model.GoalModel{
		ID:                goalID,
		UserID:            t.currentUserID,
		GoalType:          goalType,
		TargetAmount:      decimal.NewFromInt(int64(target)),
		CurrentAmount:     decimal.Zero,
		TargetUnit:        unit,
		StartDate:         start,
		EndDate:           &end,
		DurationDays:      &duration,
		IsActive:          true,
		ReminderFrequency: "daily",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theGoalStartedDaysAgo(days int) error {
	start := t.today().AddDate(0, 0, -days)
	end := start.AddDate(0, 0, t.goalDuration)

	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Updates(map[string]any{
			"start_date": start,
			"end_date":   end,
		}).Error
}

func (t *testContext) theGoalHasReminderFrequency(frequency string) error {
	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("reminder_frequency", frequency).Error
}

func (t *testContext) theGoalHasCurrentProgress(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("current_amount", value).Error
}

func (t *testContext) aStreakExists(streakType string, count, best, daysAgo int) error {
	lastUpdated := t.today().AddDate(0, 0, -daysAgo)
	now := t.clock.Now()

	streakModel := &model.StreakModel{
		ID:           uuid.New(),
		UserID:       t.currentUserID,
		StreakType:   streakType,
		CurrentCount: count,
		BestCount:    best,
		LastUpdated:  &lastUpdated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(streakModel).Error
}

func (t *testContext) aProfileExists(displayName string) error {
	now := t.clock.Now()

	profileModel := &model.ProfileModel{
		ID:          uuid.New(),
		UserID:      t.currentUserID,
		DisplayName: displayName,
		Email:       "test@example.com",
		Challenges:  pq.StringArray{"late night snacking"},
		Motivation:  "be healthier",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(profileModel).Error
}

func (t *testContext) theClockAdvancesDays(days int) error {
	t.clock.Advance(time.Duration(days) * 24 * time.Hour)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{other_user_id}}", t.otherUserID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the goal ID from creation responses
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentGoalID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field '%s' should not exist, got '%v'", field, value)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
