package ds

// Статусы заказов. Переходы между статусами не проверяются - любое
// значение записывается как есть, пользователь может выставить статус
// напрямую.
const (
	StatusNotOrdered = "не заказан"
	StatusOrdered    = "заказан"
	StatusCalled     = "прозвонен"
	StatusDelivered  = "вручен"
)

// MklStatuses - полный жизненный цикл заказа МКЛ
var MklStatuses = []string{StatusNotOrdered, StatusOrdered, StatusCalled, StatusDelivered}

// MeridianStatuses - у Меридиана только два состояния
var MeridianStatuses = []string{StatusNotOrdered, StatusOrdered}
