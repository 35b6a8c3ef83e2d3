package scene

import (
	"github.com/vovakirdan/pocketpet/internal/core"
	"github.com/vovakirdan/pocketpet/internal/pet"
)

var petSprites = map[pet.DefinitionID]*core.Image{
	pet.Blob: core.ParseImage(`
....####....
..########..
.##########.
.##.####.##.
############
############
.##########.
..########..
`),
	pet.Sprout: core.ParseImage(`
.....##.....
....#..#....
.....##.....
...######...
..##.##.##..
..########..
..##....##..
...######...
`),
	pet.Pawn: core.ParseImage(`
..##....##..
..###..###..
..########..
.##.####.##.
.##########.
..###..###..
..########..
..##....##..
.###....###.
`),
	pet.Bud: core.ParseImage(`
...#....#...
...##..##...
....####....
..########..
.##.####.##.
.##########.
..########..
...##..##...
..###..###..
`),
	pet.Hound: core.ParseImage(`
.##......##.....
.###....###.....
..########......
..#.####.#......
..########....#.
...######....##.
..############..
.##############.
.##############.
..##.##..##.##..
..##.##..##.##..
`),
	pet.Fern: core.ParseImage(`
..#..##..#..
.###.##.###.
..########..
....####....
..########..
.##.####.##.
.##########.
..########..
...######...
...##..##...
..###..###..
`),
	pet.Owl: core.ParseImage(`
.##......##.
.###....###.
..########..
.##.####.##.
.#.#.##.#.#.
.##########.
##.######.##
##.######.##
.##########.
..########..
...#....#...
..##....##..
`),
}

func petSprite(id pet.DefinitionID) *core.Image {
	if img, ok := petSprites[id]; ok {
		return img
	}
	return petSprites[pet.Blob]
}

var (
	spritePoop = core.ParseImage(`
..#..
.###.
#####
`)
	spriteEgg = core.ParseImage(`
...##...
..####..
.######.
.#.##.#.
########
########
.######.
..####..
`)
	spriteEggCracked = core.ParseImage(`
...##...
..#..#..
.#.##.#.
.##..##.
#.####.#
########
.######.
..####..
`)
	spriteGrave = core.ParseImage(`
....####....
...#....#...
..#..##..#..
..#.####.#..
..#..##..#..
..#..##..#..
..#......#..
..#......#..
############
`)
	spriteHeart = core.ParseImage(`
.##.##.
#######
#######
.#####.
..###..
...#...
`)
	spriteBell = core.ParseImage(`
...##...
..####..
.######.
.######.
.######.
########
...##...
`)
	spriteCoin = core.ParseImage(`
.###.
#.#.#
#.#.#
#.#.#
.###.
`)
	spriteSick = core.ParseImage(`
.###.
#.#.#
#####
.#.#.
`)
	spriteZ = core.ParseImage(`
####
..#.
.#..
####
`)
	spriteSparkle = core.ParseImage(`
..#..
..#..
#####
..#..
..#..
`)
	spriteBroom = core.ParseImage(`
.....#
....#.
...#..
..#...
.###..
#####.
#.#.#.
`)
	spriteSyringe = core.ParseImage(`
#.......
.#......
..######
..######
..######
.#......
#.......
`)
)

var itemSprites = map[pet.ItemKind]*core.Image{
	pet.ItemBread: core.ParseImage(`
.######.
########
#......#
#......#
########
`),
	pet.ItemApple: core.ParseImage(`
...#...
..#....
.#####.
#######
#######
.#####.
`),
	pet.ItemCake: core.ParseImage(`
...#...
...#...
.#####.
#.#.#.#
#######
#######
`),
	pet.ItemSushi: core.ParseImage(`
.######.
#......#
#.####.#
#......#
.######.
`),
	pet.ItemMedicine: core.ParseImage(`
..###..
..#.#..
.#####.
.##.##.
.#...#.
.##.##.
.#####.
`),
	pet.ItemBall: core.ParseImage(`
.###.
#.#.#
##.##
#.#.#
.###.
`),
	pet.ItemHeater: core.ParseImage(`
#######
#.#.#.#
#.#.#.#
#.#.#.#
#######
#.....#
`),
	pet.ItemPlant: core.ParseImage(`
.#.#.#.
..###..
...#...
.#####.
.#####.
..###..
`),
	pet.ItemClock: core.ParseImage(`
.#####.
#..#..#
#..#..#
#..###.
#.....#
.#####.
`),
}

func itemSprite(k pet.ItemKind) *core.Image {
	return itemSprites[k]
}
