package flow

import (
	"strings"

	"github.com/zhalobnik/backend/internal/model/dialog"
)

// renderContacts asks for the next missing contact field, one per turn.
// Organizations provide requisites plus a phone; individuals go through
// name, address, phone and email. With everything collected the flow moves
// on to document generation.
func (m *Machine) renderContacts(state *dialog.State) *Response {
	user := state.Data.User

	if state.Data.UserType == "organization" {
		if user.OrgName == "" {
			return contactQuestion("**Введите ИНН или название вашей организации**\n\nМы автоматически подтянем все реквизиты.", dialog.InputAutocompleteCompany)
		}
		if user.Phone == "" {
			return contactQuestion("**Контактный телефон**", dialog.InputText)
		}
	} else {
		if user.FIO == "" {
			return contactQuestion("**Как вас зовут?** (ФИО)", dialog.InputAutocompleteFIO)
		}
		if user.Address == "" {
			return contactQuestion("**Ваш адрес проживания?**", dialog.InputAutocompleteAddress)
		}
		if user.Phone == "" {
			return contactQuestion("**Ваш телефон?**", dialog.InputText)
		}
		if user.Email == "" {
			return contactQuestion("**Ваш email?** (для получения копии жалобы)", dialog.InputText)
		}
	}

	return &Response{
		Message:   "⏳ Генерирую текст жалобы...",
		Step:      dialog.StepGeneratingDocument,
		IsLoading: true,
		CanGoBack: true,
	}
}

func contactQuestion(message string, mode dialog.InputMode) *Response {
	return &Response{
		Message:   message,
		InputMode: mode,
		Step:      dialog.StepCollectingContacts,
		CanGoBack: true,
	}
}

// applyContactInput stores the answer into the first empty contact field,
// mirroring the question order of renderContacts. The organization lookup
// answer additionally copies requisites out of the autocomplete payload.
func (m *Machine) applyContactInput(state *dialog.State, input string, payload *dialog.CompanyData) {
	input = strings.TrimSpace(input)
	user := &state.Data.User

	if state.Data.UserType == "organization" {
		switch {
		case user.OrgName == "":
			user.OrgName = input
			if payload != nil {
				if payload.INN != "" {
					user.OrgINN = payload.INN
				}
				if payload.Address != "" {
					user.Address = payload.Address
				}
				if payload.Director != "" {
					user.FIO = payload.Director
					user.Position = payload.DirectorPost
					if user.Position == "" {
						user.Position = "Руководитель"
					}
				}
			}
		case user.Phone == "":
			user.Phone = input
			state.Step = dialog.StepGeneratingDocument
		}
		return
	}

	switch {
	case user.FIO == "":
		user.FIO = input
	case user.Address == "":
		user.Address = input
	case user.Phone == "":
		user.Phone = input
	case user.Email == "":
		user.Email = input
		state.Step = dialog.StepGeneratingDocument
	}
}
