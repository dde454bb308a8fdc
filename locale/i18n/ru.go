package i18n

var ru = map[string]string{
	"common.server_error": "Внутренняя ошибка сервера",

	"auth.fill_all_fields":        "Заполните все обязательные поля",
	"auth.user_exists":            "Пользователь с таким email или именем уже существует",
	"auth.register_success":       "Регистрация прошла успешно",
	"auth.register_error":         "Ошибка при регистрации",
	"auth.enter_email_password":   "Введите email и пароль",
	"auth.user_not_found":         "Пользователь не найден",
	"auth.invalid_password":       "Неверный пароль",
	"auth.login_success":          "Вход выполнен успешно",
	"auth.login_error":            "Ошибка при входе",
	"auth.not_authorized":         "Необходима авторизация",
	"auth.invalid_token":          "Неверный или истёкший токен",
	"auth.getme_error":            "Ошибка при получении профиля",
	"auth.google_token_required":  "Требуется Google ID токен",
	"auth.invalid_google_token":   "Недействительный Google токен",
	"auth.google_error":           "Ошибка при входе через Google",
	"auth.invalid_email":          "Некорректный email",
	"auth.password_too_short":     "Пароль должен содержать не менее 6 символов",

	"tour.get_all_error":         "Ошибка при получении туров",
	"tour.id_required":           "Требуется ID тура",
	"tour.not_found":             "Тур не найден",
	"tour.get_one_error":         "Ошибка при получении тура",
	"tour.fill_required_fields":  "Заполните все обязательные поля",
	"tour.created":               "Тур успешно создан",
	"tour.create_error":          "Ошибка при создании тура",
	"tour.updated":               "Тур успешно обновлён",
	"tour.update_error":          "Ошибка при обновлении тура",
	"tour.deleted":               "Тур успешно удалён",
	"tour.delete_error":          "Ошибка при удалении тура",
	"tour.search_query_required": "Введите поисковый запрос",
	"tour.search_error":          "Ошибка при поиске туров",

	"car.get_all_error":        "Ошибка при получении автомобилей",
	"car.id_required":          "Требуется ID автомобиля",
	"car.not_found":            "Автомобиль не найден",
	"car.get_one_error":        "Ошибка при получении автомобиля",
	"car.fill_required_fields": "Заполните все обязательные поля",
	"car.invalid_tour":         "Указанный тур не существует",
	"car.created":              "Автомобиль успешно создан",
	"car.create_error":         "Ошибка при создании автомобиля",
	"car.updated":              "Автомобиль успешно обновлён",
	"car.update_error":         "Ошибка при обновлении автомобиля",
	"car.deleted":              "Автомобиль успешно удалён",
	"car.delete_error":         "Ошибка при удалении автомобиля",

	"review.tour_id_required":        "Требуется ID тура",
	"review.car_id_required":         "Требуется ID автомобиля",
	"review.rating_comment_required": "Требуются рейтинг и комментарий",
	"review.rating_range":            "Рейтинг должен быть от 1 до 5",
	"review.tour_not_found":          "Тур не найден",
	"review.car_not_found":           "Автомобиль не найден",
	"review.already_left":            "Вы уже оставили отзыв",
	"review.created":                 "Отзыв успешно создан",
	"review.create_error":            "Ошибка при создании отзыва",
	"review.id_required":             "Требуется ID отзыва",
	"review.not_found":               "Отзыв не найден",
	"review.forbidden":               "Вы можете удалять только свои отзывы",
	"review.deleted":                 "Отзыв успешно удалён",
	"review.delete_error":            "Ошибка при удалении отзыва",
	"review.get_all_error":           "Ошибка при получении отзывов",
	"review.fill_all_fields":         "Заполните все обязательные поля",
	"review.invalid_category":        "Недопустимая категория отзыва",

	"favorite.get_tours_error":      "Ошибка при получении избранных туров",
	"favorite.get_cars_error":       "Ошибка при получении избранных автомобилей",
	"favorite.tour_id_required":     "Требуется ID тура",
	"favorite.car_id_required":      "Требуется ID автомобиля",
	"favorite.tour_not_found":       "Тур не найден",
	"favorite.car_not_found":        "Автомобиль не найден",
	"favorite.tour_already_added":   "Тур уже в избранном",
	"favorite.car_already_added":    "Автомобиль уже в избранном",
	"favorite.tour_added":           "Тур добавлен в избранное",
	"favorite.car_added":            "Автомобиль добавлен в избранное",
	"favorite.tour_removed":         "Тур удалён из избранного",
	"favorite.car_removed":          "Автомобиль удалён из избранного",
	"favorite.tour_not_in_favorites": "Тур не найден в избранном",
	"favorite.car_not_in_favorites":  "Автомобиль не найден в избранном",
	"favorite.add_error":            "Ошибка при добавлении в избранное",
	"favorite.remove_error":         "Ошибка при удалении из избранного",

	"day.day_number_required": "Требуется номер дня",
	"day.created":             "День тура создан",
	"day.create_error":        "Ошибка при создании дня тура",
	"day.get_error":           "Ошибка при получении дней тура",
	"day.id_required":         "Требуется ID дня",
	"day.not_found":           "День тура не найден",
	"day.updated":             "День тура обновлён",
	"day.update_error":        "Ошибка при обновлении дня тура",
	"day.deleted":             "День тура удалён",
	"day.delete_error":        "Ошибка при удалении дня тура",
	"day.tour_id_required":    "Требуется ID тура",

	"item.day_id_required":            "Требуется ID дня",
	"item.title_description_required": "Требуются название и описание",
	"item.created":                    "Пункт программы создан",
	"item.create_error":               "Ошибка при создании пункта программы",
	"item.get_error":                  "Ошибка при получении пунктов программы",
	"item.id_required":                "Требуется ID пункта",
	"item.not_found":                  "Пункт программы не найден",
	"item.updated":                    "Пункт программы обновлён",
	"item.update_error":               "Ошибка при обновлении пункта программы",
	"item.deleted":                    "Пункт программы удалён",
	"item.delete_error":               "Ошибка при удалении пункта программы",

	"program.get_error": "Ошибка при получении программы тура",

	"upload.no_file":    "Файл не найден",
	"upload.file_error": "Ошибка при открытии файла",
	"upload.failed":     "Не удалось загрузить файл",
	"upload.success":    "Файл успешно загружен",
}
