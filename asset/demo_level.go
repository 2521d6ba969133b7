// Package asset carries built-in content for the sandbox
package asset

// DemoLevel is a small level exercising stacked rooms, portals, a pillar,
// patrolling walkers, a bubbling lamp and a camera trigger chain
const DemoLevel = `
# === Rooms ===
# Room 0: main hall, 7x4 sectors; column x=6 hands over to room 1,
# the 2x2 corner under the loft stacks onto room 2
rooms:
  - x: 0
    z: 0
    top: -3072
    bottom: 0
    size: [7, 4]
    fill: {box: 0}
    sectors:
      - {x: 0, z: 0, above: 2}
      - {x: 0, z: 1, above: 2}
      - {x: 1, z: 0, above: 2}
      - {x: 1, z: 1, above: 2}
      - {x: 2, z: 2, wall: true}
      - {x: 6, z: 0, next: 1}
      - {x: 6, z: 1, next: 1}
      - {x: 6, z: 2, next: 1}
      - {x: 6, z: 3, next: 1}

  # Room 1: side gallery, one step down
  - x: 6144
    z: 0
    top: -3072
    bottom: -256
    size: [4, 4]
    fill: {box: 1}
    sectors:
      - {x: 0, z: 0, next: 0}
      - {x: 0, z: 1, next: 0}
      - {x: 0, z: 2, next: 0}
      - {x: 0, z: 3, next: 0}

  # Room 2: loft above the hall corner
  - x: 0
    z: 0
    top: -5120
    bottom: -3072
    size: [2, 2]
    fill: {below: 0}

boxes:
  - {min_x: 0, max_x: 7167, min_z: 0, max_z: 4095, floor: 0, overlaps: [1]}
  - {min_x: 6144, max_x: 10239, min_z: 0, max_z: 4095, floor: -256, overlaps: [0]}

# === Models ===
meshes:
  - {name: torso}
  - {name: head}
  - {name: lamp}
  - {name: torso_armed}
  - {name: holster, empty: true}

models:
  - mesh_start: 0
    mesh_count: 2
    animation: 0
    view_joint: 1
    back_flip_state: 3
    nodes:
      - {parent: -1}
      - {parent: 0, offset: [0, -512, 0]}
  - mesh_start: 2
    mesh_count: 1
    animation: 2
    nodes:
      - {parent: -1}
  - mesh_start: 3
    mesh_count: 2
    animation: 0
    nodes:
      - {parent: -1}
      - {parent: 0, offset: [0, -512, 0]}

# === Animations ===
# 0 walk: 1024 forward per cycle, footsteps on frames 3 and 11, then turn
# 1 stand: idle breathing, leaves for walk on request
# 2 lamp: slow flicker with bubbles
# 3 turn: half turn on its last frame, then walk
animations:
  - state: 1
    frame_rate: 4
    frame_start: 0
    frame_end: 15
    next_animation: 3
    next_frame: 30
    state_changes:
      - state: 2
        ranges: [{low: 0, high: 15, next_animation: 1, next_frame: 20}]
    commands:
      - {kind: offset, vector: [0, 0, 1024]}
      - {kind: sound, frame: 3, code: 0}
      - {kind: sound, frame: 11, code: 0}
    frames:
      - {min: [-128, -768, -128], max: [128, 0, 128], angles: [[0, 0, 0], [0, -15, 0]]}
      - {min: [-128, -768, -160], max: [128, 0, 160], angles: [[5, 0, 0], [0, 0, 0]]}
      - {min: [-128, -768, -128], max: [128, 0, 128], angles: [[0, 0, 0], [0, 15, 0]]}
      - {min: [-128, -768, -160], max: [128, 0, 160], angles: [[5, 0, 0], [0, 0, 0]]}
  - state: 2
    frame_rate: 2
    frame_start: 20
    frame_end: 25
    next_animation: 1
    next_frame: 20
    state_changes:
      - state: 1
        ranges: [{low: 20, high: 25, next_animation: 0, next_frame: 0}]
    frames:
      - {min: [-128, -768, -128], max: [128, 0, 128], angles: [[0, 0, 0], [0, 0, 0]]}
      - {min: [-128, -772, -128], max: [128, 0, 128], angles: [[-2, 0, 0], [0, 0, 0]]}
      - {min: [-128, -768, -128], max: [128, 0, 128], angles: [[0, 0, 0], [0, 0, 0]]}
  - state: 0
    frame_rate: 1
    frame_start: 0
    frame_end: 29
    next_animation: 2
    next_frame: 0
    commands:
      - {kind: effect, frame: 15, code: 2}
    frames:
      - {min: [-64, -256, -64], max: [64, 0, 64], angles: [[0, 0, 0]]}
  - state: 3
    frame_rate: 1
    frame_start: 30
    frame_end: 33
    next_animation: 0
    next_frame: 0
    commands:
      - {kind: effect, frame: 33, code: 0}
    frames:
      - {min: [-128, -768, -128], max: [128, 0, 128], angles: [[0, 0, 0], [0, 0, 0]]}

# === Entities ===
entities:
  - {model: 0, room: 0, pos: [1536, 0, 1536], rotation: 90, shadow: true}
  - {model: 1, room: 1, pos: [8192, -256, 2048]}
  - {model: 0, room: 1, pos: [7680, -256, 1024], rotation: 0, shadow: true}
  - {type: 9, room: 0, pos: [512, 0, 3584]}

cameras:
  - {pos: [3584, -2048, 512], room: 0}
  - {pos: [9728, -2048, 512], room: 1}

# footstep 0, bubble 37, secret 173
sounds:
  ids: {0: 0, 37: 1, 173: 2}
  infos:
    - {offset: 0, variants: 3, volume: 0.4}
    - {offset: 3, variants: 2, volume: 0.6, chance: 16384}
    - {offset: 5, variants: 1, volume: 1.0, replay: true}

# Chain 0 is handed to the walker; each clip end forwards one link: secret 0,
# then a cut to the gallery camera framing the second walker
chains:
  - commands:
      - {action: activate, value: 0}
      - {action: secret, value: 0}
      - {action: camera_switch, value: 1, timer: 3}
      - {action: camera_target, value: 2, timer: 3}
`
