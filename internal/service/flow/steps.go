package flow

import (
	"fmt"
	"strings"

	"github.com/zhalobnik/backend/internal/model/dialog"
)

func (m *Machine) renderWelcome(_ *dialog.State) *Response {
	return &Response{
		Message: "Здравствуйте! 👋\n\nЯ помогу вам составить и отправить жалобу.\n\n**Кто подаёт жалобу?**",
		Options: []dialog.Choice{
			{ID: "individual", Label: "👤 Лично от себя"},
			{ID: "organization", Label: "🏢 От имени организации / ИП"},
		},
		InputMode: dialog.InputOptions,
		Step:      dialog.StepUserType,
		CanGoBack: false,
	}
}

func (m *Machine) renderCategories(state *dialog.State) *Response {
	var options []dialog.Choice
	if state.Data.UserType == "organization" {
		options = []dialog.Choice{
			{ID: "contractor", Label: "🤝 Контрагент / Поставщик"},
			{ID: "government", Label: "🏛️ Госорган / Надзорный орган"},
			{ID: "tax", Label: "📋 Налоговая инспекция"},
			{ID: "bank", Label: "🏦 Банк / Лизинговая компания"},
			{ID: "landlord", Label: "🏢 Арендодатель / Арендатор"},
			{ID: "competitor", Label: "⚔️ Недобросовестная конкуренция"},
			{ID: "utilities", Label: "🔧 Коммунальные / Ресурсоснабжающие"},
			{ID: "subcontractor", Label: "👷 Подрядчик / Исполнитель"},
		}
	} else {
		options = []dialog.Choice{
			{ID: "zhkh", Label: "🏠 Управляющая компания / ЖКХ"},
			{ID: "employer", Label: "💼 Работодатель"},
			{ID: "shop", Label: "🛒 Магазин / Интернет-сервис"},
			{ID: "bank", Label: "🏦 Банк / МФО / Страховая"},
			{ID: "government", Label: "🏛️ Госорган / Чиновник"},
			{ID: "medical", Label: "🏥 Больница / Поликлиника"},
			{ID: "police_complaint", Label: "👮 Полиция (жалоба НА полицию)"},
			{ID: "neighbors", Label: "🏘️ Соседи"},
		}
	}

	return &Response{
		Message:   "**На кого хотите пожаловаться?**",
		Options:   options,
		InputMode: dialog.InputOptions,
		Step:      dialog.StepCategory,
		CanGoBack: true,
	}
}

func (m *Machine) renderPreview(state *dialog.State) *Response {
	return &Response{
		Message:      "**Текст жалобы:**\n\n" + state.Data.DocumentText,
		DocumentText: state.Data.DocumentText,
		InputMode:    dialog.InputPreview,
		Step:         dialog.StepPreview,
		Options: []dialog.Choice{
			{ID: "approve", Label: "✅ Всё верно, выбрать получателей"},
			{ID: "edit", Label: "✏️ Отредактировать"},
			{ID: "regenerate", Label: "🔄 Сгенерировать заново"},
		},
		CanGoBack: true,
	}
}

func (m *Machine) renderConfirm(state *dialog.State) *Response {
	var names strings.Builder
	for _, r := range state.Data.SelectedRecipients {
		fmt.Fprintf(&names, "• %s\n", r.Name)
	}

	return &Response{
		Message: fmt.Sprintf("**Готово к отправке!**\n\nПолучатели:\n%s\n**Отправить жалобу?**", names.String()),
		Options: []dialog.Choice{
			{ID: "send", Label: "📤 Отправить"},
			{ID: "download", Label: "📥 Скачать черновик"},
			{ID: "back", Label: "◀️ Изменить получателей"},
		},
		InputMode: dialog.InputOptions,
		Step:      dialog.StepConfirmSend,
		CanGoBack: true,
	}
}

func (m *Machine) renderComplete(_ *dialog.State) *Response {
	return &Response{
		Message: "🎉 **Готово!**\n\nСпасибо за использование сервиса. Удачи с вашей жалобой!\n\nХотите подать ещё одну жалобу?",
		Options: []dialog.Choice{
			{ID: "new", Label: "📝 Новая жалоба"},
			{ID: "exit", Label: "👋 Выйти"},
		},
		InputMode: dialog.InputOptions,
		Step:      dialog.StepComplete,
		CanGoBack: false,
	}
}
