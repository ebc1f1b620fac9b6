package character

import (
	"coward3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controller advances a Player against static level geometry.
//
// Integration is explicit Euler on the measured frame time, so results are
// frame-rate dependent: the same input over the same wall-clock time lands
// in slightly different places at 30 and 144 fps.
type Controller struct {
	Tuning Tuning
}

func NewController(tuning Tuning) *Controller {
	return &Controller{Tuning: tuning}
}

// StepResult reports what a single step did.
type StepResult struct {
	Floor           Floor
	WallCorrections int
	Jumped          bool
	Landed          bool
	Respawned       bool
}

// Step runs one simulation step: gravity, jump, horizontal move, wall
// resolution, vertical move, floor snap and the fall-through safety net.
// jump is the edge of the jump input for this frame. A player already below
// KillPlaneY is respawned without simulating.
func (c *Controller) Step(p *Player, mesh *physics.Mesh, jump bool, dt float32) StepResult {
	var res StepResult
	t := c.Tuning

	if t.MaxFrameDelta > 0 && dt > t.MaxFrameDelta {
		dt = t.MaxFrameDelta
	}
	if p.Position.Y < t.KillPlaneY {
		c.respawn(p)
		res.Respawned = true
		return res
	}
	wasGrounded := p.Grounded

	if !p.Grounded {
		p.Velocity.Y -= t.Gravity * dt
	}

	if p.Grounded && jump {
		p.Velocity.Y = t.JumpPower
		p.Grounded = false
		res.Jumped = true
	}

	// No horizontal momentum: velocity is rebuilt from intent every step.
	p.Velocity.X = p.WishDirection.X * p.MoveSpeed
	p.Velocity.Z = p.WishDirection.Z * p.MoveSpeed

	p.Position.X += p.Velocity.X * dt
	p.Position.Z += p.Velocity.Z * dt

	res.WallCorrections = ResolveWallsIterative(mesh, &p.Position, t.CapsuleRadius, p.Size.Y, t)

	p.Position.Y += p.Velocity.Y * dt

	res.Floor = ProbeFloor(mesh, p.Position, t)
	distToGround := p.Position.Y - res.Floor.Height

	switch {
	case res.Floor.Found && distToGround <= t.GroundEpsilon && p.Velocity.Y <= 0:
		p.Position.Y = res.Floor.Height
		p.Velocity.Y = 0
		p.Grounded = true
	case res.Floor.Found && distToGround < 0:
		// Rising through a floor: pop on top of it but keep the current
		// classification; gravity lands the player next step.
		p.Position.Y = res.Floor.Height
		p.Velocity.Y = 0
	default:
		p.Grounded = false
	}
	res.Landed = p.Grounded && !wasGrounded

	if p.Position.Y < t.KillPlaneY {
		c.respawn(p)
		res.Respawned = true
		res.Landed = false
	}

	return res
}

// respawn recovers a player that fell through the level.
func (c *Controller) respawn(p *Player) {
	p.Position = c.Tuning.RespawnPoint
	p.Velocity = rl.Vector3{}
	p.Grounded = false
}
