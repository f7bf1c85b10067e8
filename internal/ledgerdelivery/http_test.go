package ledgerdelivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/internal/middleware"
	"github.com/go-petr/swagbank/pkg/currencypkg"
	"github.com/go-petr/swagbank/pkg/errorspkg"
	"github.com/go-petr/swagbank/pkg/jsonpkg"
	"github.com/go-petr/swagbank/pkg/randompkg"
	"github.com/go-petr/swagbank/pkg/tokenpkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := RegisterValidators(v); err != nil {
			log.Fatal("cannot register validators:", err)
		}
	}

	os.Exit(m.Run())
}

type apiResponse struct {
	Data  map[string]jsonpkg.RawMessage `json:"data"`
	Error string                        `json:"error"`
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) apiResponse {
	t.Helper()

	var res apiResponse
	require.NoError(t, jsonpkg.Unmarshal(recorder.Body.Bytes(), &res))

	return res
}

type apiTest struct {
	name          string
	method        string
	url           string
	body          gin.H
	noAuth        bool
	buildStubs    func(service *MockService)
	checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
}

func runAPITests(t *testing.T, testCases []apiTest) {
	t.Helper()

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := gin.New()
			NewHandler(service).Register(server, server.Group("/", middleware.AuthMiddleware(tokenMaker)))

			var body bytes.Buffer
			if tc.body != nil {
				require.NoError(t, jsonpkg.NewEncoder(&body).Encode(tc.body))
			}

			request, err := http.NewRequestWithContext(context.Background(), tc.method, tc.url, &body)
			require.NoError(t, err)

			if !tc.noAuth {
				require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, "bot", time.Minute))
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func requireStatus(status int) func(t *testing.T, recorder *httptest.ResponseRecorder) {
	return func(t *testing.T, recorder *httptest.ResponseRecorder) {
		t.Helper()
		require.Equal(t, status, recorder.Code, recorder.Body.String())
	}
}

func swagAmount(n int64) currencypkg.Amount {
	return currencypkg.SwagAmount(currencypkg.MustSwag(n))
}

func TestAccountAPI(t *testing.T) {
	account := domain.PersonalAccount{
		ID:           42,
		CreationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Timezone:     "Europe/Paris",
		SwagBalance:  currencypkg.MustSwag(120),
		StyleRate:    domain.DefaultStyleRate,
	}

	runAPITests(t, []apiTest{
		{
			name:   "CreateOK",
			method: http.MethodPost,
			url:    "/accounts",
			body:   gin.H{"user_id": 42, "guild_id": 7, "timezone": "Europe/Paris"},
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateAccount(gomock.Any(), domain.UserID(42), domain.GuildID(7), "Europe/Paris").Times(1).Return(account, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var got accountView
				require.NoError(t, jsonpkg.Unmarshal(decode(t, recorder).Data["account"], &got))
				require.Equal(t, domain.UserID(42), got.ID)
				require.Equal(t, "120", got.Swag.String())
			},
		},
		{
			name:   "CreateNoAuthorization",
			method: http.MethodPost,
			url:    "/accounts",
			body:   gin.H{"user_id": 42},
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: requireStatus(http.StatusUnauthorized),
		},
		{
			name:   "CreateInvalidTimezone",
			method: http.MethodPost,
			url:    "/accounts",
			body:   gin.H{"user_id": 42, "timezone": "Mars/Olympus"},
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Equal(t, "Timezone field is not a valid time zone", decode(t, recorder).Error)
			},
		},
		{
			name:   "CreateMissingUser",
			method: http.MethodPost,
			url:    "/accounts",
			body:   gin.H{"guild_id": 7},
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Equal(t, "UserID field is required", decode(t, recorder).Error)
			},
		},
		{
			name:   "CreateAlreadyExists",
			method: http.MethodPost,
			url:    "/accounts",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateAccount(gomock.Any(), domain.UserID(42), domain.GuildID(0), "").Times(1).
					Return(domain.PersonalAccount{}, domain.ErrAccountAlreadyExists)
			},
			checkResponse: requireStatus(http.StatusConflict),
		},
		{
			name:   "CreateInternalError",
			method: http.MethodPost,
			url:    "/accounts",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.PersonalAccount{}, errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
				require.Equal(t, errorspkg.ErrInternal.Error(), decode(t, recorder).Error)
			},
		},
		{
			name:   "GetOK",
			method: http.MethodGet,
			url:    "/accounts/42",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().AccountInfo(gomock.Any(), domain.UserID(42)).Times(1).Return(account, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "GetNotFound",
			method: http.MethodGet,
			url:    "/accounts/43",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().AccountInfo(gomock.Any(), domain.UserID(43)).Times(1).
					Return(domain.PersonalAccount{}, domain.NotFound(domain.UserAddress(43)))
			},
			checkResponse: requireStatus(http.StatusNotFound),
		},
		{
			name:   "GetInvalidID",
			method: http.MethodGet,
			url:    "/accounts/0",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().AccountInfo(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
		{
			name:   "HistoryPage",
			method: http.MethodGet,
			url:    "/accounts/42/history?limit=5&offset=10",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().History(gomock.Any(), domain.UserAddress(42), 5, 10).Times(1).Return([]domain.Block{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "HistoryLimitTooLarge",
			method: http.MethodGet,
			url:    "/accounts/42/history?limit=500",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().History(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
		{
			name:   "Forbes",
			method: http.MethodGet,
			url:    "/forbes",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Forbes(gomock.Any(), 10).Times(1).Return([]domain.PersonalAccount{account})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got []forbesEntry
				require.NoError(t, jsonpkg.Unmarshal(decode(t, recorder).Data["forbes"], &got))
				require.Len(t, got, 1)
				require.Equal(t, 1, got[0].Rank)
				require.Equal(t, domain.UserID(42), got[0].User)
			},
		},
	})
}

func TestOperationsAPI(t *testing.T) {
	runAPITests(t, []apiTest{
		{
			name:   "MineOK",
			method: http.MethodPost,
			url:    "/mining",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().Mine(gomock.Any(), domain.UserID(42)).Times(1).Return(currencypkg.MustSwag(17), nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.JSONEq(t, `"17"`, string(decode(t, recorder).Data["mined"]))
			},
		},
		{
			name:   "MineTwice",
			method: http.MethodPost,
			url:    "/mining",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().Mine(gomock.Any(), domain.UserID(42)).Times(1).Return(currencypkg.Swag{}, domain.ErrAlreadyMinedToday)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
		{
			name:   "TransferOK",
			method: http.MethodPost,
			url:    "/transfers",
			body:   gin.H{"from": 1, "to": 2, "amount": "25", "currency": "SWAG"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), domain.UserID(1), domain.UserID(2), swagAmount(25)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "TransferUnsupportedCurrency",
			method: http.MethodPost,
			url:    "/transfers",
			body:   gin.H{"from": 1, "to": 2, "amount": "25", "currency": "EUR"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
		{
			name:   "TransferInvalidAmount",
			method: http.MethodPost,
			url:    "/transfers",
			body:   gin.H{"from": 1, "to": 2, "amount": "-3", "currency": "SWAG"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
		{
			name:   "TransferInsufficientBalance",
			method: http.MethodPost,
			url:    "/transfers",
			body:   gin.H{"from": 1, "to": 2, "amount": "1.5", "currency": "STYLE"},
			buildStubs: func(service *MockService) {
				err := &domain.InsufficientBalanceError{Address: domain.UserAddress(1), Field: domain.StyleField}
				service.EXPECT().Transfer(gomock.Any(), domain.UserID(1), domain.UserID(2), gomock.Any()).Times(1).Return(domain.Outcome{}, err)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
		{
			name:   "StakeOK",
			method: http.MethodPost,
			url:    "/stakes",
			body:   gin.H{"user_id": 42, "amount": "100"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Stake(gomock.Any(), domain.UserID(42), currencypkg.MustSwag(100)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "ReleaseTooEarly",
			method: http.MethodPost,
			url:    "/stakes/release",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().Release(gomock.Any(), domain.UserID(42)).Times(1).Return(domain.Outcome{}, domain.ErrStillBlocked)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
		{
			name:   "TimezoneLocked",
			method: http.MethodPut,
			url:    "/timezone",
			body:   gin.H{"user_id": 42, "timezone": "Asia/Tokyo"},
			buildStubs: func(service *MockService) {
				err := &domain.TimeZoneLockedError{Until: time.Now().Add(time.Hour)}
				service.EXPECT().SetTimezone(gomock.Any(), domain.UserID(42), "Asia/Tokyo").Times(1).Return(domain.Outcome{}, err)
			},
			checkResponse: requireStatus(http.StatusForbidden),
		},
		{
			name:   "LootZeroCharge",
			method: http.MethodPost,
			url:    "/powers/looting",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().Loot(gomock.Any(), domain.UserID(42), uint64(0)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "Firedamp",
			method: http.MethodPost,
			url:    "/powers/firedamp",
			body:   gin.H{"user_id": 42, "charge": 7},
			buildStubs: func(service *MockService) {
				service.EXPECT().Firedamp(gomock.Any(), domain.UserID(42), uint64(7)).Times(1).Return(domain.Outcome{DelayDays: 3}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "TaxEvasionNotApplicable",
			method: http.MethodPost,
			url:    "/powers/tax-evasion",
			body:   gin.H{"user_id": 42, "charge": 7},
			buildStubs: func(service *MockService) {
				service.EXPECT().TaxEvasion(gomock.Any(), domain.UserID(42), uint64(7)).Times(1).Return(domain.Outcome{}, domain.ErrPowerNotApplicable)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
	})
}

func TestCagnotteAPI(t *testing.T) {
	pot := domain.CagnotteAccount{
		ID:       3,
		Name:     "pot",
		Currency: currencypkg.SWAG,
		Balance:  swagAmount(0),
		Managers: []domain.UserID{42},
	}

	runAPITests(t, []apiTest{
		{
			name:   "CreateOK",
			method: http.MethodPost,
			url:    "/cagnottes",
			body:   gin.H{"user_id": 42, "name": "pot", "currency": "SWAG"},
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateCagnotte(gomock.Any(), domain.UserID(42), "pot", currencypkg.SWAG).Times(1).Return(pot, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var got cagnotteView
				require.NoError(t, jsonpkg.Unmarshal(decode(t, recorder).Data["cagnotte"], &got))
				require.Equal(t, "€3", got.Label)
			},
		},
		{
			name:   "CreateNameTaken",
			method: http.MethodPost,
			url:    "/cagnottes",
			body:   gin.H{"user_id": 42, "name": "pot", "currency": "STYLE"},
			buildStubs: func(service *MockService) {
				service.EXPECT().CreateCagnotte(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
					Return(domain.CagnotteAccount{}, domain.ErrCagnotteNameAlreadyExists)
			},
			checkResponse: requireStatus(http.StatusConflict),
		},
		{
			name:   "GetDestroyed",
			method: http.MethodGet,
			url:    "/cagnottes/3",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().Cagnotte(gomock.Any(), domain.CagnotteID(3)).Times(1).
					Return(domain.CagnotteAccount{}, domain.NotFound(domain.CagnotteAddressOf(3)))
			},
			checkResponse: requireStatus(http.StatusNotFound),
		},
		{
			name:   "History",
			method: http.MethodGet,
			url:    "/cagnottes/3/history",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().History(gomock.Any(), domain.CagnotteAddressOf(3), 10, 0).Times(1).Return(nil, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "Contribute",
			method: http.MethodPost,
			url:    "/cagnottes/3/contributions",
			body:   gin.H{"user_id": 7, "amount": "5", "currency": "SWAG"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Contribute(gomock.Any(), domain.UserID(7), domain.CagnotteID(3), swagAmount(5)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "DisburseNotManager",
			method: http.MethodPost,
			url:    "/cagnottes/3/disbursements",
			body:   gin.H{"user_id": 7, "recipient": 8, "amount": "5", "currency": "SWAG"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Disburse(gomock.Any(), domain.UserID(7), domain.CagnotteID(3), domain.UserID(8), swagAmount(5)).Times(1).
					Return(domain.Outcome{}, domain.ErrNotCagnotteManager)
			},
			checkResponse: requireStatus(http.StatusForbidden),
		},
		{
			name:   "ShareWithParticipants",
			method: http.MethodPost,
			url:    "/cagnottes/3/share",
			body:   gin.H{"user_id": 42, "participants": []uint64{7, 8}},
			buildStubs: func(service *MockService) {
				service.EXPECT().Share(gomock.Any(), domain.UserID(42), domain.CagnotteID(3), []domain.UserID{7, 8}).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "LotteryRecordedParticipants",
			method: http.MethodPost,
			url:    "/cagnottes/3/lottery",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().Lottery(gomock.Any(), domain.UserID(42), domain.CagnotteID(3), gomock.Nil()).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "Rename",
			method: http.MethodPut,
			url:    "/cagnottes/3/name",
			body:   gin.H{"user_id": 42, "name": "jar"},
			buildStubs: func(service *MockService) {
				service.EXPECT().RenameCagnotte(gomock.Any(), domain.UserID(42), domain.CagnotteID(3), "jar").Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "Reset",
			method: http.MethodPost,
			url:    "/cagnottes/3/reset",
			body:   gin.H{"user_id": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().ResetParticipants(gomock.Any(), domain.UserID(42), domain.CagnotteID(3)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "DestroyNotEmpty",
			method: http.MethodDelete,
			url:    "/cagnottes/3?user_id=42",
			buildStubs: func(service *MockService) {
				service.EXPECT().DestroyCagnotte(gomock.Any(), domain.UserID(42), domain.CagnotteID(3)).Times(1).
					Return(domain.Outcome{}, domain.ErrCagnotteDestructionForbidden)
			},
			checkResponse: requireStatus(http.StatusForbidden),
		},
		{
			name:   "DestroyWithoutRequester",
			method: http.MethodDelete,
			url:    "/cagnottes/3",
			buildStubs: func(service *MockService) {
				service.EXPECT().DestroyCagnotte(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: requireStatus(http.StatusBadRequest),
		},
	})
}

func TestAdminAPI(t *testing.T) {
	ts := time.Date(2024, 2, 3, 4, 5, 6, 7_000_000, time.UTC)

	runAPITests(t, []apiTest{
		{
			name:   "NewDay",
			method: http.MethodPost,
			url:    "/admin/new-day",
			buildStubs: func(service *MockService) {
				service.EXPECT().NewDay(gomock.Any()).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "NewDayNoAuthorization",
			method: http.MethodPost,
			url:    "/admin/new-day",
			noAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().NewDay(gomock.Any()).Times(0)
			},
			checkResponse: requireStatus(http.StatusUnauthorized),
		},
		{
			name:   "Giveaway",
			method: http.MethodPost,
			url:    "/admin/giveaways",
			body:   gin.H{"user_id": 42, "amount": "10", "currency": "SWAG"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Giveaway(gomock.Any(), domain.UserID(42), swagAmount(10)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "ImmunityOK",
			method: http.MethodPost,
			url:    "/admin/immunities",
			body:   gin.H{"kind": "cagnotte", "id": 3, "power": "looting", "immune": true},
			buildStubs: func(service *MockService) {
				service.EXPECT().SetImmunity(gomock.Any(), domain.CagnotteAddressOf(3), domain.PowerLooting, true).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "ImmunityUnknownPower",
			method: http.MethodPost,
			url:    "/admin/immunities",
			body:   gin.H{"kind": "user", "id": 3, "power": "teleport"},
			buildStubs: func(service *MockService) {
				service.EXPECT().SetImmunity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				require.Equal(t, "Power field is not a known power", decode(t, recorder).Error)
			},
		},
		{
			name:   "Asset",
			method: http.MethodPost,
			url:    "/admin/assets",
			body:   gin.H{"key": "logo", "path": "assets/logo.png"},
			buildStubs: func(service *MockService) {
				service.EXPECT().RegisterAsset(gomock.Any(), "logo", "assets/logo.png").Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "GuildTimezone",
			method: http.MethodPut,
			url:    "/admin/guilds/5/timezone",
			body:   gin.H{"timezone": "America/New_York"},
			buildStubs: func(service *MockService) {
				service.EXPECT().SetGuildTimezone(gomock.Any(), domain.GuildID(5), "America/New_York").Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "SystemChannel",
			method: http.MethodPut,
			url:    "/admin/guilds/5/system-channel",
			body:   gin.H{"channel_id": 99},
			buildStubs: func(service *MockService) {
				service.EXPECT().SetSystemChannel(gomock.Any(), domain.GuildID(5), domain.ChannelID(99)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "ForbesChannel",
			method: http.MethodPut,
			url:    "/admin/guilds/5/forbes-channel",
			body:   gin.H{"channel_id": 98},
			buildStubs: func(service *MockService) {
				service.EXPECT().SetForbesChannel(gomock.Any(), domain.GuildID(5), domain.ChannelID(98)).Times(1).Return(domain.Outcome{}, nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "RemoveBlock",
			method: http.MethodDelete,
			url:    "/admin/blocks",
			body:   gin.H{"timestamp": ts.Format(time.RFC3339Nano), "issuer": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().Remove(gomock.Any(), domain.BlockID{Timestamp: ts, Issuer: 42}).Times(1).Return(nil)
			},
			checkResponse: requireStatus(http.StatusOK),
		},
		{
			name:   "RemoveUnknownBlock",
			method: http.MethodDelete,
			url:    "/admin/blocks",
			body:   gin.H{"timestamp": ts.Format(time.RFC3339Nano), "issuer": 42},
			buildStubs: func(service *MockService) {
				service.EXPECT().Remove(gomock.Any(), gomock.Any()).Times(1).Return(domain.ErrBlockNotFound)
			},
			checkResponse: requireStatus(http.StatusNotFound),
		},
	})
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		err  error
		want int
	}{
		{domain.NotFound(domain.UserAddress(1)), http.StatusNotFound},
		{fmt.Errorf("replay: %w", domain.ErrBlockNotFound), http.StatusNotFound},
		{domain.ErrDuplicateBlock, http.StatusConflict},
		{domain.ErrCagnotteAlreadyExists, http.StatusConflict},
		{&domain.TimeZoneLockedError{}, http.StatusForbidden},
		{domain.ErrInvalidCurrencyValue, http.StatusBadRequest},
		{domain.ErrNothingBlocked, http.StatusBadRequest},
		{errorspkg.ErrInternal, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, statusOf(tc.err), tc.err.Error())
	}
}
