package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Walker = donburi.NewTag().SetName("Walker")
)
