// Package orderform implements the order-form generation pipeline: it
// reads the account's object graph, validates it, derives the financial
// display fields, assembles the document plan and writes the serialized
// file to a user-chosen path.
package orderform

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"autoservice/internal/doc"
)

// SavePrompt asks the user for a destination path. ok is false when the
// user cancelled the prompt.
type SavePrompt interface {
	SaveFile(title, suggestedName string) (path string, ok bool, err error)
}

// Renderer serializes a document plan into its binary form.
type Renderer interface {
	Render(doc.Document) ([]byte, error)
}

// Service generates order forms. All collaborators are injected; the
// service itself never mutates stored data.
type Service struct {
	db       *gorm.DB
	prompt   SavePrompt
	renderer Renderer
}

func NewService(db *gorm.DB, prompt SavePrompt, renderer Renderer) *Service {
	return &Service{db: db, prompt: prompt, renderer: renderer}
}

// Generate builds and saves the order form for one account. It fails
// with one of the package sentinel errors when required data is missing
// or the save prompt is cancelled; nothing is written in those cases.
func (s *Service) Generate(ctx context.Context, accountID uint) error {
	company, ok, err := s.company(ctx)
	if err != nil {
		return err
	}
	if !ok || company.ShortName == "" || company.Address == "" {
		return ErrCompanyData
	}

	account, ok, err := s.account(ctx, accountID)
	if err != nil {
		return err
	}
	if !ok || account.LegalNumber == "" || account.Date == "" {
		return ErrAccountData
	}

	client, ok, err := s.client(ctx, accountID)
	if err != nil {
		return err
	}
	if !ok || client.Name == "" || client.Phone == "" {
		return ErrClientData
	}

	auto, ok, err := s.auto(ctx, account.AutoID)
	if err != nil {
		return err
	}
	if !ok || auto.VIN == "" || auto.PlateNumber == "" {
		return ErrAutoData
	}

	works, err := s.works(ctx, accountID)
	if err != nil {
		return err
	}
	if len(works) == 0 {
		return ErrWorkData
	}

	parts, err := s.parts(ctx, works)
	if err != nil {
		return err
	}

	document := Build(FormData{
		Company: company,
		Account: account,
		Client:  client,
		Auto:    auto,
		Works:   WorkLines(works),
		Parts:   PartLines(parts),
	})

	fileName := fmt.Sprintf("Заказ-наряд_%s_%s.docx", account.LegalNumber, account.Date)
	path, ok, err := s.prompt.SaveFile("Сохранить заказ-наряд", fileName)
	if err != nil {
		return fmt.Errorf("save dialog: %w", err)
	}
	if !ok {
		return ErrSaveRejected
	}

	buf, err := s.renderer.Render(document)
	if err != nil {
		return fmt.Errorf("render order form: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write order form: %w", err)
	}
	return nil
}
