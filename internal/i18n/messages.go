package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	en := language.English
	message.SetString(en, KeyTitle, "Division")
	message.SetString(en, KeySuccess, "Order ready!")
	message.SetString(en, KeyFailure, "Oops!")
	message.SetString(en, KeyPack, "Pack")
	message.SetString(en, KeyPrompt, "How many go in each box?")
	message.SetString(en, KeyTapHint, "press space to continue")
	message.SetString(en, KeyTooSmall, "Window too small (need %dx%d)")
	message.SetString(en, KeyHelpPick, "pick")
	message.SetString(en, KeyHelpMove, "move")
	message.SetString(en, KeyHelpPack, "pack")
	message.SetString(en, KeyHelpContinue, "continue")
	message.SetString(en, KeyHelpQuit, "quit")
	message.SetString(en, KeyMenuSubtitle, "Choose a language")
	message.SetString(en, KeyMenuSelect, "Up/Down: Navigate  |  Enter: Select  |  Q: Quit")
	message.SetString(en, KeyLanguageName, "English")
	message.SetString(en, KeyHelpHistory, "history")
	message.SetString(en, KeyHistoryTitle, "Rounds this session")
	message.SetString(en, KeyHistoryEmpty, "No rounds answered yet")
	message.SetString(en, KeyColRound, "#")
	message.SetString(en, KeyColProblem, "Problem")
	message.SetString(en, KeyColAnswer, "Answer")
	message.SetString(en, KeyColResult, "Result")
	message.SetString(en, KeyResultRight, "right")
	message.SetString(en, KeyResultWrong, "wrong")

	ru := language.Russian
	message.SetString(ru, KeyTitle, "Деление")
	message.SetString(ru, KeySuccess, "Заказ готов!")
	message.SetString(ru, KeyFailure, "Ошибка!")
	message.SetString(ru, KeyPack, "Упаковать")
	message.SetString(ru, KeyPrompt, "Сколько положить в каждую коробку?")
	message.SetString(ru, KeyTapHint, "нажмите пробел, чтобы продолжить")
	message.SetString(ru, KeyTooSmall, "Окно слишком маленькое (нужно %dx%d)")
	message.SetString(ru, KeyHelpPick, "выбрать")
	message.SetString(ru, KeyHelpMove, "двигать")
	message.SetString(ru, KeyHelpPack, "упаковать")
	message.SetString(ru, KeyHelpContinue, "дальше")
	message.SetString(ru, KeyHelpQuit, "выход")
	message.SetString(ru, KeyMenuSubtitle, "Выберите язык")
	message.SetString(ru, KeyMenuSelect, "Вверх/Вниз: выбор  |  Enter: начать  |  Q: выход")
	message.SetString(ru, KeyLanguageName, "Русский")
	message.SetString(ru, KeyHelpHistory, "история")
	message.SetString(ru, KeyHistoryTitle, "Раунды за сессию")
	message.SetString(ru, KeyHistoryEmpty, "Пока нет ответов")
	message.SetString(ru, KeyColRound, "№")
	message.SetString(ru, KeyColProblem, "Пример")
	message.SetString(ru, KeyColAnswer, "Ответ")
	message.SetString(ru, KeyColResult, "Итог")
	message.SetString(ru, KeyResultRight, "верно")
	message.SetString(ru, KeyResultWrong, "неверно")
}
