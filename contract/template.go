package contract

import (
	"strconv"

	"contractserver/pricing"
)

// Ключи шаблона договора. В шаблоне они записываются как {ключ} и
// должны быть цельным текстовым фрагментом — токен, разорванный
// форматированием, подстановкой не распознаётся.
const (
	KeyInstitution    = "учреждение"
	KeyClass          = "класс"
	KeyChildrenCount  = "кол_детей"
	KeyAlbumCount     = "кол_альбомов"
	KeyUnitPrice      = "стоимость_одного_альбома"
	KeyTotal          = "общая_сумма"
	KeyDeposit        = "предоплата"
	KeyRemainder      = "остаток"
	KeyContactName    = "фамилия"
	KeyPhone          = "телефон"
	KeyVKLink         = "ссылка_ВК"
	KeyPages          = "кол_страниц"
	KeyHours          = "колвочасов"
	KeyDate           = "дата"
	KeyContractNumber = "номер_договора"
	KeyShootSchedule  = "когдасъёмка"
	KeySurchargeNote  = "ц"
)

// SurchargeNote фрагмент, дописываемый к описанию комплекта в
// договоре при включённой надбавке.
const SurchargeNote = ", Цитаты"

// TemplateValues строит плоскую карту значений для подстановки в
// шаблон договора. В шаблон идёт цена без надбавки — надбавка уже
// учтена в общей сумме.
func TemplateValues(record OrderRecord, fin pricing.Financials, ov Overrides) map[string]string {
	institution := record.InstitutionType
	if record.InstitutionNumber != "" {
		if institution != "" {
			institution += " "
		}
		institution += "№" + record.InstitutionNumber
	}

	surchargeNote := ""
	if fin.Surcharge {
		surchargeNote = SurchargeNote
	}

	return map[string]string{
		KeyInstitution:    institution,
		KeyClass:          record.ClassOrGroup,
		KeyChildrenCount:  record.ChildrenCount,
		KeyAlbumCount:     record.AlbumCount,
		KeyUnitPrice:      strconv.Itoa(fin.BasePrice),
		KeyTotal:          strconv.Itoa(fin.Total),
		KeyDeposit:        strconv.Itoa(fin.Deposit),
		KeyRemainder:      strconv.Itoa(fin.Remainder),
		KeyContactName:    record.ContactName,
		KeyPhone:          joinPhones(record.Phones),
		KeyVKLink:         ov.VKLink,
		KeyPages:          record.Pages,
		KeyHours:          record.Hours,
		KeyDate:           ov.Date,
		KeyContractNumber: ov.ContractNumber,
		KeyShootSchedule:  ov.ShootSchedule,
		KeySurchargeNote:  surchargeNote,
	}
}

func joinPhones(phones []string) string {
	result := ""
	for i, p := range phones {
		if i > 0 {
			result += ", "
		}
		result += p
	}
	return result
}
