package orderform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"autoservice/internal/doc"
	"autoservice/internal/models"
)

func setupOrderFormDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique in-memory DB per test name to avoid leakage via shared cache
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open db")
	err = db.AutoMigrate(&models.Client{}, &models.Auto{}, &models.Account{},
		&models.Master{}, &models.Work{}, &models.Part{}, &models.Company{})
	require.NoError(t, err, "migrate")
	return db
}

// seedOrderFixtures inserts the complete object graph of one invoicable account.
func seedOrderFixtures(t *testing.T, db *gorm.DB) models.Account {
	t.Helper()
	company := models.Company{ID: models.CompanyID, ShortName: "ABC Service", Address: "1 Main St"}
	require.NoError(t, db.Create(&company).Error)

	client := models.Client{Name: "J. Doe", Phone: "555-1111"}
	require.NoError(t, db.Create(&client).Error)

	auto := models.Auto{ClientID: client.ID, VIN: "VIN123", PlateNumber: "X777XX"}
	require.NoError(t, db.Create(&auto).Error)

	account := models.Account{AutoID: auto.ID, Date: "2024-05-01", LegalNumber: "A-100"}
	require.NoError(t, db.Create(&account).Error)

	work := models.Work{AccountID: account.ID, Description: "диагностика", Cost: 1000, Hours: 2, Discount: 0.1, Date: "2024-05-01"}
	require.NoError(t, db.Create(&work).Error)

	return account
}

type fakePrompt struct {
	path      string
	cancel    bool
	calls     int
	suggested string
}

func (f *fakePrompt) SaveFile(title, suggestedName string) (string, bool, error) {
	f.calls++
	f.suggested = suggestedName
	if f.cancel {
		return "", false, nil
	}
	return f.path, true, nil
}

type fakeRenderer struct {
	last     doc.Document
	rendered bool
}

func (f *fakeRenderer) Render(d doc.Document) ([]byte, error) {
	f.last = d
	f.rendered = true
	return []byte("DOCX"), nil
}

func TestGenerate_WritesDocument(t *testing.T) {
	db := setupOrderFormDB(t)
	account := seedOrderFixtures(t, db)

	dir := t.TempDir()
	prompt := &fakePrompt{path: filepath.Join(dir, "order.docx")}
	renderer := &fakeRenderer{}
	svc := NewService(db, prompt, renderer)

	err := svc.Generate(context.Background(), account.ID)
	require.NoError(t, err)

	require.Equal(t, "Заказ-наряд_A-100_2024-05-01.docx", prompt.suggested)
	data, err := os.ReadFile(prompt.path)
	require.NoError(t, err)
	require.Equal(t, []byte("DOCX"), data)

	text := documentText(renderer.last)
	require.Contains(t, text, "Заказ-наряд № A-100 от 1 мая 2024 г.")
	require.Contains(t, text, "1800.00")
	require.Contains(t, text, "10%")
	require.Contains(t, text, "Всего наименований 1 на сумму 1800.00 RUB")
}

func TestGenerate_ValidationOrder(t *testing.T) {
	db := setupOrderFormDB(t)
	account := seedOrderFixtures(t, db)

	// break both company and account: the company check must win
	require.NoError(t, db.Model(&models.Company{}).Where("id_companydetails = ?", models.CompanyID).
		Update("address", "").Error)
	require.NoError(t, db.Model(&models.Account{}).Where("id_account = ?", account.ID).
		Update("legal_number", "").Error)

	prompt := &fakePrompt{path: filepath.Join(t.TempDir(), "order.docx")}
	renderer := &fakeRenderer{}
	svc := NewService(db, prompt, renderer)

	err := svc.Generate(context.Background(), account.ID)
	require.ErrorIs(t, err, ErrCompanyData)
	require.Zero(t, prompt.calls, "prompt must not be reached")
	require.False(t, renderer.rendered, "nothing may be rendered")
}

func TestGenerate_MissingEntities(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(t *testing.T, db *gorm.DB, account models.Account)
		want    error
	}{
		{
			"account gate",
			func(t *testing.T, db *gorm.DB, account models.Account) {
				require.NoError(t, db.Model(&models.Account{}).Where("id_account = ?", account.ID).
					Update("date", "").Error)
			},
			ErrAccountData,
		},
		{
			"client gate",
			func(t *testing.T, db *gorm.DB, account models.Account) {
				require.NoError(t, db.Model(&models.Client{}).Where("1 = 1").Update("phone", "").Error)
			},
			ErrClientData,
		},
		{
			"auto gate",
			func(t *testing.T, db *gorm.DB, account models.Account) {
				require.NoError(t, db.Model(&models.Auto{}).Where("1 = 1").Update("vin", "").Error)
			},
			ErrAutoData,
		},
		{
			"work gate",
			func(t *testing.T, db *gorm.DB, account models.Account) {
				require.NoError(t, db.Where("id_account = ?", account.ID).Delete(&models.Work{}).Error)
			},
			ErrWorkData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupOrderFormDB(t)
			account := seedOrderFixtures(t, db)
			tt.corrupt(t, db, account)

			svc := NewService(db, &fakePrompt{}, &fakeRenderer{})
			err := svc.Generate(context.Background(), account.ID)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerate_UnknownAccount(t *testing.T) {
	db := setupOrderFormDB(t)
	seedOrderFixtures(t, db)

	svc := NewService(db, &fakePrompt{}, &fakeRenderer{})
	err := svc.Generate(context.Background(), 9999)
	require.ErrorIs(t, err, ErrAccountData)
}

func TestGenerate_CancelledPrompt(t *testing.T) {
	db := setupOrderFormDB(t)
	account := seedOrderFixtures(t, db)

	dir := t.TempDir()
	prompt := &fakePrompt{cancel: true}
	renderer := &fakeRenderer{}
	svc := NewService(db, prompt, renderer)

	err := svc.Generate(context.Background(), account.ID)
	require.ErrorIs(t, err, ErrSaveRejected)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Empty(t, entries, "no file may be written after cancel")
}

func TestGenerate_NoParts(t *testing.T) {
	db := setupOrderFormDB(t)
	account := seedOrderFixtures(t, db)

	prompt := &fakePrompt{path: filepath.Join(t.TempDir(), "order.docx")}
	renderer := &fakeRenderer{}
	svc := NewService(db, prompt, renderer)

	require.NoError(t, svc.Generate(context.Background(), account.ID))

	text := documentText(renderer.last)
	require.NotContains(t, text, "Перечень используемых материалов:")
}

func TestGenerate_WorksNewestFirst(t *testing.T) {
	db := setupOrderFormDB(t)
	account := seedOrderFixtures(t, db)

	later := models.Work{AccountID: account.ID, Description: "замена колодок", Cost: 2000, Hours: 1, Date: "2024-05-02"}
	require.NoError(t, db.Create(&later).Error)

	prompt := &fakePrompt{path: filepath.Join(t.TempDir(), "order.docx")}
	renderer := &fakeRenderer{}
	svc := NewService(db, prompt, renderer)
	require.NoError(t, svc.Generate(context.Background(), account.ID))

	text := documentText(renderer.last)
	newest := strings.Index(text, "ЗАМЕНА КОЛОДОК")
	oldest := strings.Index(text, "ДИАГНОСТИКА")
	require.GreaterOrEqual(t, newest, 0)
	require.GreaterOrEqual(t, oldest, 0)
	require.Less(t, newest, oldest, "works must be listed newest first")
}
