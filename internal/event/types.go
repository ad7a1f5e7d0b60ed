// internal/event/types.go
package event

const (
	BirdHit          EventType = "BirdHit"          // Шар сбил птицу
	BallLanded       EventType = "BallLanded"       // Запущенный шар остановился на земле
	PipeEntered      EventType = "PipeEntered"      // Шар влетел в трубу
	WallBounced      EventType = "WallBounced"      // Отскок от боковой стены
	PowerUpCollected EventType = "PowerUpCollected" // Подобран бонус
	BallLaunched     EventType = "BallLaunched"     // Шар выпущен из рогатки
)

// BirdHitData — данные попадания по птице
type BirdHitData struct {
	BirdType       int
	X, Y           float64
	Distance       float64 // Расстояние между центрами в момент удара
	CombinedRadius float64
}

// BallLandedData — данные посадки шара
type BallLandedData struct {
	X, Y float64
}

// PipeEnteredData — данные попадания в трубу
type PipeEnteredData struct {
	X, Y       float64
	DirectShot bool // Без единого отскока от стен
}

// WallBouncedData — данные отскока от стены
type WallBouncedData struct {
	X, Y    float64
	Bounces int // Счётчик последовательных отскоков шара
}

// PowerUpCollectedData — данные подбора бонуса
type PowerUpCollectedData struct {
	PowerType int
	X, Y      float64
}

// BallLaunchedData — данные запуска
type BallLaunchedData struct {
	X, Y  float64
	Power float64 // Доля от максимальной силы [0, 1]
}
