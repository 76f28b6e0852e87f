package texts

type TextKey = string

// User-facing strings. The bot speaks Russian only, so keys map straight to
// literals instead of a per-language table.
const (
	// Main menu buttons
	CatalogButton      TextKey = "Товары"
	CartButton         TextKey = "Корзина"
	AboutButton        TextKey = "О нас"
	PaymentButton      TextKey = "Оплата"
	ShippingButton     TextKey = "Доставка"
	RegistrationButton TextKey = "Регистрация"
	BackButton         TextKey = "Назад"
	ToCartButton       TextKey = "В корзину"
	BuyButton          TextKey = "Купить"
	HomeButton         TextKey = "На главную"
	PrevPageButton     TextKey = "◀ Пред."
	NextPageButton     TextKey = "След. ▶"

	// Cart buttons
	IncrementButton  TextKey = "+1"
	DecrementButton  TextKey = "-1"
	DeleteButton     TextKey = "Удалить"
	PickupButton     TextKey = "Самовывоз"
	DeliveryButton   TextKey = "Доставка"
	PayButton        TextKey = "Оплатить"
	AddedToCart      TextKey = "Товар добавлен в корзину"
	CartLineCaption  TextKey = "<strong>%s</strong>\n%s x %d = %s\nТовар %d из %d в корзине.\nОбщая стоимость товаров в корзине %s"
	OrderLine        TextKey = "%s %dшт. %s\n"
	OrderTotal       TextKey = "<strong>Общая стоимость: %s</strong>"
	ChoosePickup     TextKey = "Выберите пункт выдачи"
	BranchCaption    TextKey = "💪<strong>%s</strong>💪\n😱Прямо по адресу %s!\n✨%s✨"
	ProductCaption   TextKey = "<strong>%s</strong>\n%s\nСтоимость: %s\n<strong>Товар %d из %d</strong>"
	GoingHome        TextKey = "Домой..."
	ChooseFromMenu   TextKey = "Выберите опцию из меню"
	BackToStep       TextKey = "Вы вернулись к предыдущему шагу"

	// Registration
	ShareContactButton   TextKey = "Поделиться номером"
	ManualPhoneButton    TextKey = "Ввести номер вручную"
	ConfirmPhoneButton   TextKey = "Подтвердить номер"
	AskPhoneManual       TextKey = "Введите свой номер в формате +7XXXXXXXXXX (или напишите \"назад\" чтобы вернуться)"
	PhoneConfirmed       TextKey = "Номер успешно подтвержден"
	PhoneInvalid         TextKey = "Номер введен некорректно, попробуйте еще раз или введите \"назад\"\nОбратите внимание на формат \"+79005553535\""
	PhoneReceived        TextKey = "Отлично! Ваш номер - %s, если это не так - выберите \"Ввести номер вручную\""
	ForeignContact       TextKey = "Мы принимаем только ВАШИ контакты, выберите опцию:"
	NothingToConfirm     TextKey = "С добрыми намерениями сюда люди не попадают, пора домой..."

	// Delivery address flow
	AskAddress      TextKey = "Введите адрес в текстовом формате (укажите все необходимые для курьера данные!)"
	AddressTooLong  TextKey = "Слишком длинный адрес, попробуйте еще раз"
	AddressNotText  TextKey = "Адрес нужен в текстовом формате, например \"улица Петра Смородина, д. 13, кв.6\""
	AskCourierNote  TextKey = "Оставьте комметарий для курьера (как вас найти, куда подъехать и тд.)"
	OnlyPaymentLeft TextKey = "Осталось лишь оплатить :)"

	// Admin panel
	AdminWhatToDo        TextKey = "Что хотите сделать?"
	AdminPlaceholder     TextKey = "Выберите действие"
	AddProductButton     TextKey = "Добавить товар"
	AssortmentButton     TextKey = "Ассортимент"
	ChangeBannerButton   TextKey = "Добавить/Изменить баннер"
	BroadcastButton      TextKey = "Общая рассылка"
	ChooseCategory       TextKey = "Выберите категорию:"
	AssortmentDone       TextKey = "А вот и списочек товаров!"
	AdminDeleteButton    TextKey = "Удалить"
	AdminChangeButton    TextKey = "Изменить"
	ProductDeleted       TextKey = "Товар был удален!"
	ProductAdded         TextKey = "Товар успешно добавлен !"
	ProductChanged       TextKey = "Товар успешно изменен !"
	ActionsCancelled     TextKey = "Действия отменены!"
	NoStepBack           TextKey = "ОТСТУПАТЬ НЕКУДА-ПОЗАДИ МОСКВА(для отмены напишите 'отмена')"
	AskProductName       TextKey = "Отправьте название товара"
	AskProductNameAgain  TextKey = "Введите название снова:"
	NameLengthError      TextKey = "ОШИБКА! Название должно быть от 5 до 144 символов !"
	NameNotText          TextKey = "Неверное введено название, попробуйте снова(в текстовом формате)"
	AskDescription       TextKey = "Введите описание товара"
	AskDescriptionAgain  TextKey = "Введите описание снова:"
	DescriptionTooShort  TextKey = "Слишком короткое описание ;("
	DescriptionNotText   TextKey = "ОШИБКА! Введите описание в текстовом формате"
	AskCategory          TextKey = "Выберите категорию из представленных:"
	AskCategoryAgain     TextKey = "Выберите категорию  снова:"
	CategoryTapButton    TextKey = "тыкните по кнопке с категорией как следует!"
	CategoryUseButtons   TextKey = "Тыкайте по кнопкам в панели!"
	AskPrice             TextKey = "Введите стоимость(в пределах 99999.99)"
	AskPriceAgain        TextKey = "Введите стоимость снова(в пределах 99999.99):"
	PriceInvalid         TextKey = "Введите валидное значение стоимости"
	PriceNotText         TextKey = "Вы ввели недоступное значение, попробуйте снова"
	AskImage             TextKey = "Загрузите изображение"
	ImageInvalid         TextKey = "Это не изображение, попробуйте снова"
	AskBannerPhoto       TextKey = "Отправьте фотографию баннера,\nВ описании укажите какой именно баннер добавляете!\nТекущие баннеры: %v"
	BannerNameInvalid    TextKey = "Введите название баннера корректно, список баннеров: %v"
	BannerPhotoOrCancel  TextKey = "Отправьте ФОТО баннера, либо 'отмена'"
	BannerDone           TextKey = "Дело сделано!"
	AskBroadcastText     TextKey = "Напишите текст рассылки"
	BroadcastReport      TextKey = "Рассылка отправлена: доставлено %d, не доставлено %d"
	SomethingWentWrong   TextKey = "Произошла ошибка! Попробуйте снова"

	// Control words typed by users inside flows
	CancelWord TextKey = "отмена"
	BackWord   TextKey = "назад"
	ReuseWord  TextKey = "."
)
