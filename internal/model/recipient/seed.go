package recipient

// SeedDirectory returns the built-in recipient directory.
func SeedDirectory() []Entry {
	return []Entry{
		{
			ID:            "prosecution",
			Name:          "Прокуратура РФ",
			Email:         "genproc@genproc.gov.ru",
			Website:       "https://epp.genproc.gov.ru/web/gprf/internet-reception",
			Jurisdiction:  "Надзор за всеми органами власти и организациями",
			Reason:        "Универсальный орган надзора. Обязаны реагировать если другие органы бездействуют.",
			WhenEffective: "Когда другие органы не помогли или бездействуют; при системных нарушениях",
			Priority:      1,
		},
		{
			ID:            "git",
			Name:          "Трудовая инспекция (ГИТ)",
			Email:         "git@rostrud.ru",
			Website:       "https://онлайнинспекция.рф",
			Jurisdiction:  "Контроль соблюдения трудового законодательства",
			Reason:        "Могут провести внеплановую проверку работодателя, выдать предписание, наложить штраф.",
			WhenEffective: "Невыплата зарплаты, незаконное увольнение, нарушение условий труда",
			Priority:      1,
		},
		{
			ID:            "rostrud",
			Name:          "Роструд (Федеральная служба)",
			Email:         "rostrud@rostrud.ru",
			Website:       "https://rostrud.gov.ru",
			Jurisdiction:  "Вышестоящий орган над трудовыми инспекциями",
			Reason:        "Обращайтесь сюда если местная ГИТ не помогла.",
			WhenEffective: "Если ГИТ бездействует или вынесла неверное решение",
			Priority:      2,
		},
		{
			ID:            "rospotrebnadzor",
			Name:          "Роспотребнадзор",
			Email:         "depart@gsen.ru",
			Website:       "https://petition.rospotrebnadzor.ru",
			Jurisdiction:  "Защита прав потребителей, санитарный контроль",
			Reason:        "Могут провести проверку магазина/компании, выдать предписание, оштрафовать.",
			WhenEffective: "Некачественный товар, обман потребителя, отказ в возврате, навязывание услуг",
			Priority:      1,
		},
		{
			ID:            "ozpp",
			Name:          "Общество защиты прав потребителей",
			Website:       "https://ozpp.ru",
			Jurisdiction:  "Общественная организация по защите прав",
			Reason:        "Бесплатные консультации, помощь в составлении претензий, могут представлять в суде.",
			WhenEffective: "Нужна юридическая помощь по потребительским спорам",
			Priority:      3,
		},
		{
			ID:            "housing_inspection",
			Name:          "Жилищная инспекция",
			Website:       "https://dom.gosuslugi.ru",
			Jurisdiction:  "Контроль управляющих компаний и ТСЖ",
			Reason:        "Могут обязать УК устранить нарушения, провести перерасчёт, лишить лицензии.",
			WhenEffective: "Проблемы с УК, некачественные услуги ЖКХ, неправильные начисления",
			Priority:      1,
		},
		{
			ID:            "minstroyrf",
			Name:          "Минстрой России",
			Email:         "info@minstroyrf.gov.ru",
			Website:       "https://minstroyrf.gov.ru",
			Jurisdiction:  "Федеральное министерство, курирует ЖКХ всей страны",
			Reason:        "Обращайтесь при системных проблемах или если регион не справляется.",
			WhenEffective: "Массовые нарушения в ЖКХ, бездействие местных органов",
			Priority:      2,
		},
		{
			ID:            "police",
			Name:          "Полиция (МВД)",
			Website:       "https://mvd.ru/request_main",
			Jurisdiction:  "Расследование преступлений и правонарушений",
			Reason:        "Обязаны принять заявление о любом преступлении.",
			WhenEffective: "Мошенничество, кража, угрозы, побои, вымогательство, порча имущества",
			Priority:      1,
		},
		{
			ID:            "investigative_committee",
			Name:          "Следственный комитет (СК РФ)",
			Website:       "https://sledcom.ru/reception",
			Jurisdiction:  "Расследование тяжких преступлений",
			Reason:        "Расследуют серьёзные дела; обращайтесь если полиция бездействует.",
			WhenEffective: "Тяжкие преступления, коррупция должностных лиц, бездействие полиции",
			Priority:      2,
		},
		{
			ID:            "fsb",
			Name:          "ФСБ России",
			Website:       "https://www.fsb.ru/fsb/webreception.htm",
			Jurisdiction:  "Контрразведка, терроризм, госбезопасность",
			Reason:        "Принимают сообщения о терроризме, шпионаже, коррупции высокопоставленных лиц.",
			WhenEffective: "Террор, экстремизм, крупная коррупция на уровне региона/страны",
			Priority:      3,
		},
		{
			ID:            "central_bank",
			Name:          "Центральный банк РФ",
			Website:       "https://cbr.ru/reception/",
			Jurisdiction:  "Регулирование банков, МФО, страховых компаний",
			Reason:        "Главный регулятор. Могут оштрафовать банк, отозвать лицензию.",
			WhenEffective: "Незаконные списания, скрытые комиссии, отказ в обслуживании",
			Priority:      1,
		},
		{
			ID:            "aro",
			Name:          "Финансовый омбудсмен",
			Website:       "https://finombudsman.ru",
			Jurisdiction:  "Досудебное урегулирование споров с финансовыми организациями",
			Reason:        "Бесплатно решает споры до 500 тыс. ₽. Решение обязательно для банка.",
			WhenEffective: "Споры с банками/страховыми до 500 000 рублей",
			Priority:      1,
		},
		{
			ID:            "rosfinmonitoring",
			Name:          "Росфинмониторинг",
			Website:       "https://fedsfm.ru",
			Jurisdiction:  "Противодействие отмыванию денег и финансированию терроризма",
			Reason:        "Принимают сообщения о подозрительных финансовых операциях.",
			WhenEffective: "Подозрение на отмывание денег, финансирование терроризма",
			Priority:      3,
		},
		{
			ID:            "fas",
			Name:          "ФАС России (антимонопольная служба)",
			Email:         "delo@fas.gov.ru",
			Website:       "https://fas.gov.ru/approaches/send_to_fas",
			Jurisdiction:  "Защита конкуренции, контроль рекламы и госзакупок",
			Reason:        "Могут оштрафовать за незаконную рекламу, картельный сговор, завышение цен.",
			WhenEffective: "Обманная реклама, завышенные цены монополиста, нарушения в госзакупках",
			Priority:      1,
		},
		{
			ID:            "roskomnadzor",
			Name:          "Роскомнадзор",
			Email:         "rsoc_in@rkn.gov.ru",
			Website:       "https://rkn.gov.ru/treatments/ask-question/",
			Jurisdiction:  "Защита персональных данных, контроль СМИ и связи",
			Reason:        "Могут оштрафовать за утечку данных, спам-звонки, незаконный сбор информации.",
			WhenEffective: "Утечка персональных данных, спам, незаконная обработка данных",
			Priority:      1,
		},
		{
			ID:            "roszdravnadzor",
			Name:          "Росздравнадзор",
			Website:       "https://roszdravnadzor.gov.ru",
			Jurisdiction:  "Контроль качества медицинской помощи",
			Reason:        "Проверяют больницы и клиники, могут лишить лицензии.",
			WhenEffective: "Врачебная ошибка, некачественное лечение, отказ в помощи",
			Priority:      1,
		},
		{
			ID:            "minzdrav",
			Name:          "Минздрав России",
			Website:       "https://minzdrav.gov.ru",
			Jurisdiction:  "Федеральное министерство здравоохранения",
			Reason:        "Вышестоящий орган над Росздравнадзором.",
			WhenEffective: "Системные проблемы в здравоохранении, бездействие Росздравнадзора",
			Priority:      2,
		},
		{
			ID:            "oms_fond",
			Name:          "Территориальный фонд ОМС",
			Jurisdiction:  "Контроль оказания медпомощи по ОМС",
			Reason:        "Защищают права застрахованных по ОМС.",
			WhenEffective: "Отказ в бесплатной помощи, требование оплаты за услуги по ОМС",
			Priority:      1,
		},
		{
			ID:            "rosobrnadzor",
			Name:          "Рособрнадзор",
			Website:       "https://obrnadzor.gov.ru",
			Jurisdiction:  "Контроль качества образования",
			Reason:        "Проверяют школы, вузы, детсады. Могут лишить аккредитации.",
			WhenEffective: "Нарушения в школе/вузе, поборы, нарушение прав учащихся",
			Priority:      1,
		},
		{
			ID:            "rostransnadzor",
			Name:          "Ространснадзор",
			Website:       "https://rostransnadzor.gov.ru",
			Jurisdiction:  "Контроль безопасности на транспорте",
			Reason:        "Контролируют авиа, ж/д, водный транспорт. Могут наказать перевозчика.",
			WhenEffective: "Задержки рейсов, потеря багажа, небезопасные условия",
			Priority:      1,
		},
		{
			ID:            "fns",
			Name:          "ФНС России (налоговая)",
			Website:       "https://www.nalog.gov.ru",
			Jurisdiction:  "Налоговый контроль",
			Reason:        "Принимают сообщения об уклонении от налогов, незаконном предпринимательстве.",
			WhenEffective: "Работодатель не платит налоги, серая зарплата",
			Priority:      2,
		},
		{
			ID:            "president_admin",
			Name:          "Администрация Президента РФ",
			Website:       "http://letters.kremlin.ru",
			Jurisdiction:  "Приём обращений граждан к Президенту",
			Reason:        "Обращения перенаправляются в соответствующие органы с контролем исполнения.",
			WhenEffective: "Когда все остальные органы не помогли",
			Priority:      3,
		},
		{
			ID:            "government_rf",
			Name:          "Правительство РФ",
			Website:       "https://services.government.ru/letters/",
			Jurisdiction:  "Исполнительная власть страны",
			Reason:        "Могут дать поручение министерствам разобраться.",
			WhenEffective: "Бездействие федеральных органов, межведомственные проблемы",
			Priority:      3,
		},
		{
			ID:            "ombudsman",
			Name:          "Уполномоченный по правам человека",
			Website:       "https://ombudsmanrf.org",
			Jurisdiction:  "Защита прав и свобод человека",
			Reason:        "Может проводить проверки, обращаться в суд в интересах граждан.",
			WhenEffective: "Нарушение конституционных прав, дискриминация, произвол властей",
			Priority:      2,
		},
		{
			ID:            "children_ombudsman",
			Name:          "Уполномоченный по правам ребёнка",
			Website:       "http://deti.gov.ru",
			Jurisdiction:  "Защита прав детей",
			Reason:        "Защищает права несовершеннолетних.",
			WhenEffective: "Нарушение прав ребёнка в школе, больнице, органами опеки",
			Priority:      1,
		},
	}
}

// SeedRecommendations returns the static category → recipient mapping used
// when the recommendation pass yields nothing.
func SeedRecommendations() map[string]Recommendation {
	return map[string]Recommendation{
		"zhkh": {
			Primary:   []string{"housing_inspection", "rospotrebnadzor"},
			Secondary: []string{"prosecution", "minstroyrf"},
		},
		"employer": {
			Primary:   []string{"git", "prosecution"},
			Secondary: []string{"rostrud", "fns"},
		},
		"shop": {
			Primary:   []string{"rospotrebnadzor", "fas"},
			Secondary: []string{"prosecution", "ozpp", "police"},
		},
		"bank": {
			Primary:   []string{"central_bank", "aro"},
			Secondary: []string{"rospotrebnadzor", "roskomnadzor", "prosecution"},
		},
		"government": {
			Primary:   []string{"prosecution"},
			Secondary: []string{"ombudsman", "president_admin", "investigative_committee"},
		},
		"neighbors": {
			Primary:   []string{"police", "housing_inspection"},
			Secondary: []string{"prosecution", "rospotrebnadzor"},
		},
		"medical": {
			Primary:   []string{"roszdravnadzor", "oms_fond"},
			Secondary: []string{"prosecution", "minzdrav", "rospotrebnadzor"},
		},
		"education": {
			Primary:   []string{"rosobrnadzor"},
			Secondary: []string{"prosecution", "children_ombudsman"},
		},
		"police_complaint": {
			Primary:   []string{"prosecution", "investigative_committee"},
			Secondary: []string{"ombudsman", "president_admin"},
		},
		"personal_data": {
			Primary:   []string{"roskomnadzor"},
			Secondary: []string{"prosecution", "rospotrebnadzor"},
		},
		"transport": {
			Primary:   []string{"rostransnadzor", "rospotrebnadzor"},
			Secondary: []string{"prosecution", "fas"},
		},
		"other": {
			Primary:   []string{"prosecution"},
			Secondary: []string{"rospotrebnadzor", "ombudsman"},
		},
	}
}

// SeedCategories returns the grievance category catalog.
func SeedCategories() []Category {
	return []Category{
		{
			ID:   "zhkh",
			Name: "Управляющая компания / ЖКХ",
			Problems: []Problem{
				{ID: "noise", Name: "Шум, нарушение тишины"},
				{ID: "flooding", Name: "Затопление, протечки"},
				{ID: "garbage", Name: "Не вывозят мусор"},
				{ID: "heating", Name: "Плохое отопление"},
				{ID: "elevator", Name: "Неисправный лифт"},
				{ID: "cleaning", Name: "Не убирают подъезд/двор"},
				{ID: "overcharge", Name: "Завышенные счета"},
				{ID: "other", Name: "Другое"},
			},
		},
		{
			ID:   "employer",
			Name: "Работодатель",
			Problems: []Problem{
				{ID: "salary", Name: "Невыплата/задержка зарплаты"},
				{ID: "schedule", Name: "Нарушение графика работы"},
				{ID: "mobbing", Name: "Моббинг, травля на работе"},
				{ID: "dismissal", Name: "Незаконное увольнение"},
				{ID: "safety", Name: "Нарушение охраны труда"},
				{ID: "discrimination", Name: "Дискриминация"},
				{ID: "contract", Name: "Нарушение трудового договора"},
				{ID: "other", Name: "Другое"},
			},
		},
		{
			ID:   "shop",
			Name: "Магазин / Интернет-сервис",
			Problems: []Problem{
				{ID: "defect", Name: "Бракованный товар"},
				{ID: "no_delivery", Name: "Не доставили товар"},
				{ID: "no_refund", Name: "Не возвращают деньги"},
				{ID: "fraud", Name: "Мошенничество"},
				{ID: "warranty", Name: "Отказ в гарантийном ремонте"},
				{ID: "quality", Name: "Плохое качество услуги"},
				{ID: "other", Name: "Другое"},
			},
		},
		{
			ID:   "bank",
			Name: "Банк / МФО / Страховая",
			Problems: []Problem{
				{ID: "fraud", Name: "Мошенничество с картой/счётом"},
				{ID: "loan", Name: "Незаконное списание по кредиту"},
				{ID: "pressure", Name: "Давление коллекторов"},
				{ID: "rate", Name: "Скрытые комиссии/проценты"},
				{ID: "personal_data", Name: "Разглашение данных"},
				{ID: "service", Name: "Отказ в обслуживании"},
				{ID: "insurance", Name: "Проблемы со страховкой"},
				{ID: "other", Name: "Другое"},
			},
		},
		{
			ID:   "government",
			Name: "Госорган / Чиновник",
			Problems: []Problem{
				{ID: "corruption", Name: "Коррупция, взятка"},
				{ID: "inaction", Name: "Бездействие чиновника"},
				{ID: "rudeness", Name: "Хамство, грубость"},
				{ID: "delay", Name: "Затягивание сроков"},
				{ID: "illegal", Name: "Незаконное решение"},
				{ID: "other", Name: "Другое"},
			},
		},
		{
			ID:   "neighbors",
			Name: "Соседи",
			Problems: []Problem{
				{ID: "noise", Name: "Шум (музыка, ремонт, крики)"},
				{ID: "flooding", Name: "Затопили квартиру"},
				{ID: "smoke", Name: "Курение в подъезде"},
				{ID: "trash", Name: "Мусор на площадке"},
				{ID: "threats", Name: "Угрозы, агрессия"},
				{ID: "animals", Name: "Проблемы с животными"},
				{ID: "other", Name: "Другое"},
			},
		},
		{
			ID:   "medical",
			Name: "Больница / Поликлиника",
			Problems: []Problem{
				{ID: "error", Name: "Врачебная ошибка"},
				{ID: "refusal", Name: "Отказ в помощи"},
				{ID: "paid", Name: "Требуют деньги за бесплатное"},
				{ID: "queue", Name: "Большие очереди"},
				{ID: "rudeness", Name: "Хамство персонала"},
				{ID: "quality", Name: "Некачественное лечение"},
				{ID: "other", Name: "Другое"},
			},
		},
		{
			ID:   "police_complaint",
			Name: "Полиция (жалоба НА полицию)",
			Problems: []Problem{
				{ID: "refusal", Name: "Отказ принять заявление"},
				{ID: "inaction", Name: "Бездействие по делу"},
				{ID: "rudeness", Name: "Грубое обращение"},
				{ID: "illegal", Name: "Незаконные действия"},
				{ID: "lost_docs", Name: "Потеряли документы"},
				{ID: "other", Name: "Другое"},
			},
		},
		{ID: "other", Name: "Другое"},
		{ID: "contractor", Name: "Контрагент / Поставщик"},
		{ID: "tax", Name: "Налоговая инспекция"},
		{ID: "landlord", Name: "Арендодатель / Арендатор"},
		{ID: "competitor", Name: "Недобросовестная конкуренция"},
		{ID: "utilities", Name: "Коммунальные / Ресурсоснабжающие"},
		{ID: "subcontractor", Name: "Подрядчик / Исполнитель"},
	}
}
