package orderform

import "errors"

// Terminal errors of the order-form pipeline. The messages are shown to
// the user verbatim; checks run in this fixed order and the first failing
// one wins.
var (
	ErrCompanyData  = errors.New("Данные компании отсутствуют")
	ErrAccountData  = errors.New("Данные счета отсутствуют")
	ErrClientData   = errors.New("Данные клиента отсутствуют")
	ErrAutoData     = errors.New("Данные авто отсутствуют")
	ErrWorkData     = errors.New("Данные работ отсутствуют")
	ErrSaveRejected = errors.New("Сохранение документа отклонено")
)
