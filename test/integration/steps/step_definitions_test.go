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
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/application/usecase/account"
	"github.com/coinbag/backend/internal/application/usecase/auth"
	"github.com/coinbag/backend/internal/application/usecase/cashflow"
	"github.com/coinbag/backend/internal/application/usecase/category"
	"github.com/coinbag/backend/internal/application/usecase/digest"
	"github.com/coinbag/backend/internal/application/usecase/paycycle"
	"github.com/coinbag/backend/internal/application/usecase/planner"
	"github.com/coinbag/backend/internal/infra/server/router"
	"github.com/coinbag/backend/internal/integration/adapters"
	"github.com/coinbag/backend/internal/integration/cache"
	"github.com/coinbag/backend/internal/integration/entrypoint/controller"
	"github.com/coinbag/backend/internal/integration/entrypoint/middleware"
	"github.com/coinbag/backend/internal/integration/persistence"
	"github.com/coinbag/backend/internal/integration/persistence/model"
	"github.com/coinbag/backend/test/integration/mock"
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

// fakeEmailSender records digest sends instead of calling the provider.
type fakeEmailSender struct{}

func (f *fakeEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	return &adapter.SendEmailResult{ProviderID: "test-provider-id"}, nil
}

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	serverPort     int
	accessToken    string
	refreshToken   string
	currentUserID  uuid.UUID
	accountIDs     map[string]uuid.UUID
	categoryIDs    map[string]uuid.UUID
	lastAccountID  uuid.UUID
	lastCategoryID uuid.UUID
	cashFlowIDs    map[string]uuid.UUID
	lastCashFlowID uuid.UUID
	lastID         uuid.UUID
	seedSeq        int
}

// seedTime returns strictly increasing timestamps so that listings ordered
// by created_at are deterministic regardless of clock resolution.
func (t *testContext) seedTime() time.Time {
	t.seedSeq++
	return time.Now().UTC().Add(time.Duration(t.seedSeq) * time.Millisecond)
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
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
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("coinbag", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"accounts":       &model.AccountModel{},
			"categories":     &model.CategoryModel{},
			"cash_flows":     &model.CashFlowModel{},
			"pay_cycles":     &model.PayCycleModel{},
			"digest_logs":    &model.DigestLogModel{},
		}),
		serverPort: testServerPort,
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^the user has digests disabled$`, test.theUserHasDigestsDisabled)

	// Account setup steps
	ctx.Given(`^an account named "([^"]*)" exists$`, test.anAccountNamedExists)

	// Category setup steps
	ctx.Given(`^a category named "([^"]*)" exists$`, test.aCategoryNamedExists)

	// Cash flow setup steps
	ctx.Given(`^an income "([^"]*)" of "([^"]*)" ([a-z]+) exists for account "([^"]*)"$`, test.anIncomeExistsForAccount)
	ctx.Given(`^an expense "([^"]*)" of "([^"]*)" ([a-z]+) exists for account "([^"]*)" in category "([^"]*)"$`, test.anExpenseExistsForAccountInCategory)
	ctx.Given(`^an expense "([^"]*)" of "([^"]*)" ([a-z]+) exists$`, test.anUnallocatedExpenseExists)

	// Pay cycle setup steps
	ctx.Given(`^a pay cycle exists with frequency "([^"]*)" and primary account "([^"]*)"$`, test.aPayCycleExistsWithFrequencyAndPrimaryAccount)
	ctx.Given(`^a pay cycle exists with frequency "([^"]*)", primary account "([^"]*)" and savings account "([^"]*)"$`, test.aPayCycleExistsWithFrequencyPrimaryAndSavings)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

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
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.accountIDs = make(map[string]uuid.UUID)
	t.categoryIDs = make(map[string]uuid.UUID)
	t.cashFlowIDs = make(map[string]uuid.UUID)
	t.lastAccountID = uuid.Nil
	t.lastCategoryID = uuid.Nil
	t.lastCashFlowID = uuid.Nil
	t.lastID = uuid.Nil

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
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			cashFlowRepo := persistence.NewCashFlowRepository(testDB.DbConn)
			payCycleRepo := persistence.NewPayCycleRepository(testDB.DbConn)
			digestLogRepo := persistence.NewDigestLogRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			planCache := cache.NewRedisPlanCache(mock.NewRedis(), cache.DefaultPlanTTL)
			emailSender := &fakeEmailSender{}

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create account use cases
			listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
			createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, planCache)
			updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo, planCache)
			deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, cashFlowRepo, payCycleRepo, planCache)

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, planCache)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, planCache)

			// Create cash flow use cases
			listCashFlowsUseCase := cashflow.NewListCashFlowsUseCase(cashFlowRepo)
			createCashFlowUseCase := cashflow.NewCreateCashFlowUseCase(cashFlowRepo, accountRepo, categoryRepo, planCache)
			updateCashFlowUseCase := cashflow.NewUpdateCashFlowUseCase(cashFlowRepo, accountRepo, categoryRepo, planCache)
			deleteCashFlowUseCase := cashflow.NewDeleteCashFlowUseCase(cashFlowRepo, planCache)

			// Create pay cycle use cases
			getPayCycleUseCase := paycycle.NewGetPayCycleUseCase(payCycleRepo)
			upsertPayCycleUseCase := paycycle.NewUpsertPayCycleUseCase(payCycleRepo, accountRepo, planCache)

			// Create planner use cases
			getPlanUseCase := planner.NewGetPlanUseCase(accountRepo, cashFlowRepo, categoryRepo, payCycleRepo)
			cachedGetPlanUseCase := planner.NewCachedGetPlanUseCase(getPlanUseCase, planCache)
			sendDigestUseCase := digest.NewSendPlanDigestUseCase(cachedGetPlanUseCase, userRepo, emailSender, digestLogRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			accountController := controller.NewAccountController(
				listAccountsUseCase,
				createAccountUseCase,
				updateAccountUseCase,
				deleteAccountUseCase,
			)

			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)

			cashFlowController := controller.NewCashFlowController(
				listCashFlowsUseCase,
				createCashFlowUseCase,
				updateCashFlowUseCase,
				deleteCashFlowUseCase,
			)

			payCycleController := controller.NewPayCycleController(
				getPayCycleUseCase,
				upsertPayCycleUseCase,
			)

			plannerController := controller.NewPlannerController(
				cachedGetPlanUseCase,
				sendDigestUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				accountController,
				categoryController,
				cashFlowController,
				payCycleController,
				plannerController,
				loginRateLimiter,
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

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:            userID,
		Email:         email,
		Name:          name,
		PasswordHash:  hashPassword(password),
		DigestEnabled: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessTokenString, err := signToken(t.currentUserID, "test@example.com", "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := signToken(t.currentUserID, "test@example.com", "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Store refresh token in database
	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func signToken(userID uuid.UUID, email, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(duration)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "coinbag",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) theUserHasDigestsDisabled() error {
	return t.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", t.currentUserID).
		Update("digest_enabled", false).Error
}

func (t *testContext) anAccountNamedExists(name string) error {
	accountID := uuid.New()
	t.accountIDs[name] = accountID
	t.lastAccountID = accountID

	now := t.seedTime()
	accountModel := &model.AccountModel{
		ID:        accountID,
		UserID:    t.currentUserID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(accountModel)
	return result.Error
}

func (t *testContext) aCategoryNamedExists(name string) error {
	categoryID := uuid.New()
	t.categoryIDs[name] = categoryID
	t.lastCategoryID = categoryID

	now := t.seedTime()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Color:     "#6366F1",
		Icon:      "tag",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(categoryModel)
	return result.Error
}

func (t *testContext) anIncomeExistsForAccount(name, amount, frequency, accountName string) error {
	accountID, ok := t.accountIDs[accountName]
	if !ok {
		return fmt.Errorf("account %q has not been created", accountName)
	}
	return t.createCashFlow(name, "income", amount, frequency, nil, &accountID)
}

func (t *testContext) anExpenseExistsForAccountInCategory(name, amount, frequency, accountName, categoryName string) error {
	accountID, ok := t.accountIDs[accountName]
	if !ok {
		return fmt.Errorf("account %q has not been created", accountName)
	}
	categoryID, ok := t.categoryIDs[categoryName]
	if !ok {
		return fmt.Errorf("category %q has not been created", categoryName)
	}
	return t.createCashFlow(name, "expense", amount, frequency, &categoryID, &accountID)
}

func (t *testContext) anUnallocatedExpenseExists(name, amount, frequency string) error {
	return t.createCashFlow(name, "expense", amount, frequency, nil, nil)
}

func (t *testContext) createCashFlow(name, cashFlowType, amount, frequency string, categoryID, accountID *uuid.UUID) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	cashFlowID := uuid.New()
	t.cashFlowIDs[name] = cashFlowID
	t.lastCashFlowID = cashFlowID

	now := t.seedTime()
	cashFlowModel := &model.CashFlowModel{
		ID:         cashFlowID,
		UserID:     t.currentUserID,
		Name:       name,
		Type:       cashFlowType,
		Amount:     parsedAmount,
		Frequency:  frequency,
		CategoryID: categoryID,
		AccountID:  accountID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := t.db.DbConn.Create(cashFlowModel)
	return result.Error
}

func (t *testContext) aPayCycleExistsWithFrequencyAndPrimaryAccount(frequency, accountName string) error {
	return t.createPayCycle(frequency, accountName, "")
}

func (t *testContext) aPayCycleExistsWithFrequencyPrimaryAndSavings(frequency, primaryName, savingsName string) error {
	return t.createPayCycle(frequency, primaryName, savingsName)
}

func (t *testContext) createPayCycle(frequency, primaryName, savingsName string) error {
	primaryID, ok := t.accountIDs[primaryName]
	if !ok {
		return fmt.Errorf("account %q has not been created", primaryName)
	}

	var savingsID *uuid.UUID
	if savingsName != "" {
		id, ok := t.accountIDs[savingsName]
		if !ok {
			return fmt.Errorf("account %q has not been created", savingsName)
		}
		savingsID = &id
	}

	now := t.seedTime()
	payCycleModel := &model.PayCycleModel{
		ID:               uuid.New(),
		UserID:           t.currentUserID,
		Frequency:        frequency,
		PrimaryAccountID: primaryID,
		SavingsAccountID: savingsID,
		NextPayDate:      now.AddDate(0, 0, 7),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	result := t.db.DbConn.Create(payCycleModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
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
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{account_id}}", t.lastAccountID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.lastCategoryID.String())
	content = strings.ReplaceAll(content, "{{cash_flow_id}}", t.lastCashFlowID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())

	// Named account and category placeholders, e.g. {{account:Everyday}}
	for name, id := range t.accountIDs {
		content = strings.ReplaceAll(content, "{{account:"+name+"}}", id.String())
	}
	for name, id := range t.categoryIDs {
		content = strings.ReplaceAll(content, "{{category:"+name+"}}", id.String())
	}

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

		// Capture the created resource ID for follow-up requests
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
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

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	expectedValue = t.replacePlaceholders(expectedValue)

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
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

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
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
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
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
