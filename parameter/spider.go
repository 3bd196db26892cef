package parameter

// Spider motion
const (
	// SpiderSpeedMin and SpiderSpeedMax bound the per-spider base speed drawn at creation
	SpiderSpeedMin = 1.5
	SpiderSpeedMax = 3.5

	// SpiderFriction damps velocity every steering step, must stay in (0, 1)
	SpiderFriction = 0.85

	// SpiderRadius is the drawn circle radius
	SpiderRadius = 8
)

// Spider behavior
const (
	// WanderRetargetChance is the per-tick probability of picking a new patrol point
	WanderRetargetChance = 0.02

	// WanderChaseDistance switches Wandering to Chasing once the spider is this close to its patrol point
	WanderChaseDistance = 100.0

	// PounceDistance switches Chasing to Pouncing once the spider is this close to the glow
	PounceDistance = 30.0

	// PounceSpeedMultiplier scales the steering impulse for the single pounce tick
	PounceSpeedMultiplier = 2.5
)

// Spider avoidance
const (
	// AvoidanceMinDistance is the separation below which spiders push apart
	AvoidanceMinDistance = 30.0

	// AvoidancePushStep is the positional nudge per too-close neighbor per tick
	AvoidancePushStep = 2.0
)
