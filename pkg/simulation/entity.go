package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids-raycast/pb"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-raycast/pkg/physics2d"
)

// VectorToProto converts a vector into its Protobuf "Envelope"
func VectorToProto(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

// VectorFromProto converts back, a nil message is the zero vector.
func VectorFromProto(p *pb.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{X: p.GetX(), Y: p.GetY()}
}

// BoidToProto converts the boid into the message sent to the renderers.
func BoidToProto(b *behavior.Boid) *pb.BoidState {
	return &pb.BoidState{
		Id:               int32(b.ID),
		Position:         VectorToProto(b.Position),
		Velocity:         VectorToProto(b.Velocity),
		DesiredDirection: VectorToProto(b.DesiredDirection),
	}
}

// BoidFromProto rebuilds a boid from a snapshot entry.
func BoidFromProto(p *pb.BoidState) behavior.Boid {
	return behavior.Boid{
		ID:               int(p.GetId()),
		Position:         VectorFromProto(p.GetPosition()),
		Velocity:         VectorFromProto(p.GetVelocity()),
		DesiredDirection: VectorFromProto(p.GetDesiredDirection()),
	}
}

// UpdateBoidFromProto updates b from a snapshot entry without allocating.
func UpdateBoidFromProto(b *behavior.Boid, p *pb.BoidState) {
	b.ID = int(p.GetId())
	b.Position = VectorFromProto(p.GetPosition())
	b.Velocity = VectorFromProto(p.GetVelocity())
	b.DesiredDirection = VectorFromProto(p.GetDesiredDirection())
}

func ColliderToProto(c *physics2d.Collider) *pb.ColliderState {
	points := make([]*pb.Vector2D, len(c.Points))
	for i, p := range c.Points {
		points[i] = VectorToProto(p)
	}
	return &pb.ColliderState{
		Points:    points,
		Loop:      c.Loop,
		Hollow:    c.IsHollow,
		Invisible: c.IsInvisible,
	}
}

func ColliderFromProto(p *pb.ColliderState) physics2d.Collider {
	points := make([]geometry.Vector2D, len(p.GetPoints()))
	for i, pt := range p.GetPoints() {
		points[i] = VectorFromProto(pt)
	}
	return physics2d.Collider{
		Points:      points,
		IsHollow:    p.GetHollow(),
		IsInvisible: p.GetInvisible(),
		Loop:        p.GetLoop(),
	}
}

// CollidersFromSnapshot rebuilds the collider arena carried by a snapshot.
func CollidersFromSnapshot(s *pb.WorldSnapshot) []physics2d.Collider {
	colliders := make([]physics2d.Collider, len(s.GetColliders()))
	for i, c := range s.GetColliders() {
		colliders[i] = ColliderFromProto(c)
	}
	return colliders
}
